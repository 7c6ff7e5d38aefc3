package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// JSON formatting.
const defaultJSONIndent = 2

// tableData is what a command shows in table mode.
type tableData struct {
	header []string
	rows   [][]string
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutputMode, format)
	}
}

// render writes data as JSON or YAML, or the table built by table.
func render(out io.Writer, data interface{}, table func() tableData) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		err = encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)

		err = encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		return renderTable(out, table())
	}
}

func renderTable(out io.Writer, data tableData) error {
	table := tablewriter.NewWriter(out)
	table.Header(toCells(data.header)...)

	for _, row := range data.rows {
		_ = table.Append(toCells(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderMessage prints a status line in table mode and a small object in
// JSON or YAML mode.
func renderMessage(out io.Writer, message string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format == constants.FormatTable {
		_, err = fmt.Fprintln(out, message)

		return err
	}

	return render(out, map[string]string{"message": message}, nil)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func yesNo(value bool) string {
	if value {
		return constants.Yes
	}

	return constants.No
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
