package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/internal/credentials"
	"github.com/fivetwenty-io/registrar-client/pkg/registrarclient"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored credentials",
		Long:  "Store registrar credentials in the OS keychain or remove them",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthLogoutCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var (
		secrets  = map[string]*string{}
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:       "login VENDOR",
		Short:     "Store credentials for a registrar",
		Long:      "Prompt for the credentials of namecom or porkbun, check them against the API and store them in the OS keychain",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{constants.VendorNameCom, constants.VendorPorkbun},
		RunE: func(cmd *cobra.Command, args []string) error {
			vendor := credentials.NormalizeVendor(args[0])

			fields, err := credentials.Fields(vendor)
			if err != nil {
				return err
			}

			values := make(map[string]string, len(fields))

			for _, field := range fields {
				value := *secrets[field]
				if value == "" {
					value, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), field, field != credentials.FieldUsername)
					if err != nil {
						return err
					}
				}

				values[field] = value
			}

			if !noVerify {
				err = verifyCredentials(cmd.Context(), vendor, values)
				if err != nil {
					return fmt.Errorf("credentials rejected: %w", err)
				}
			}

			store := credentialStore()
			for _, field := range fields {
				err = store.Set(vendor, field, values[field])
				if err != nil {
					return err
				}
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Stored %s credentials", vendor))
		},
	}

	for _, field := range []string{credentials.FieldUsername, credentials.FieldToken, credentials.FieldAPIKey, credentials.FieldSecretAPIKey} {
		secrets[field] = new(string)
		cmd.Flags().StringVar(secrets[field], field, "", field+" (prompted when omitted)")
	}

	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "store without checking the credentials")

	return cmd
}

func newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "logout VENDOR",
		Short:     "Remove stored credentials",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{constants.VendorNameCom, constants.VendorPorkbun},
		RunE: func(cmd *cobra.Command, args []string) error {
			vendor := credentials.NormalizeVendor(args[0])

			err := credentials.DeleteAll(credentialStore(), vendor)
			if err != nil {
				return err
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Removed %s credentials", vendor))
		},
	}
}

// prompt reads one value from in. Secrets are read without echo and require
// a terminal.
func prompt(in io.Reader, out io.Writer, label string, secret bool) (string, error) {
	_, _ = fmt.Fprintf(out, "%s: ", label)

	if !secret {
		value, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && value == "" {
			return "", fmt.Errorf("failed to read %s: %w", label, err)
		}

		return strings.TrimSpace(value), nil
	}

	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return "", constants.ErrNotATerminal
	}

	bytes, err := term.ReadPassword(int(file.Fd()))
	_, _ = fmt.Fprintln(out)

	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}

	return strings.TrimSpace(string(bytes)), nil
}

func verifyCredentials(ctx context.Context, vendor string, values map[string]string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	switch vendor {
	case constants.VendorNameCom:
		settings := loadConfig().NameCom
		settings.Username = values[credentials.FieldUsername]
		settings.Token = values[credentials.FieldToken]

		config, err := nameComConfig(settings, nil)
		if err != nil {
			return err
		}

		config.HTTPTimeout = constants.ShortHTTPTimeout

		client, err := registrarclient.NewNameCom(config)
		if err != nil {
			return err
		}

		_, err = client.Hello(ctx)

		return err
	case constants.VendorPorkbun:
		settings := loadConfig().Porkbun
		settings.APIKey = values[credentials.FieldAPIKey]
		settings.SecretAPIKey = values[credentials.FieldSecretAPIKey]

		config, err := porkbunConfig(settings, nil)
		if err != nil {
			return err
		}

		config.HTTPTimeout = constants.ShortHTTPTimeout

		client, err := registrarclient.NewPorkbun(config)
		if err != nil {
			return err
		}

		_, err = client.Ping(ctx)

		return err
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownVendor, vendor)
	}
}
