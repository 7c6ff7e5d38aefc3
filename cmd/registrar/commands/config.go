package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	Output  string          `json:"output,omitempty"  yaml:"output,omitempty"`
	NameCom NameComSettings `json:"namecom,omitempty" yaml:"namecom,omitempty"`
	Porkbun PorkbunSettings `json:"porkbun,omitempty" yaml:"porkbun,omitempty"`
}

// NameComSettings configures the Name.com client.
type NameComSettings struct {
	Username string `json:"username,omitempty"  yaml:"username,omitempty"`
	Token    string `json:"token,omitempty"     yaml:"token,omitempty"`
	Host     string `json:"host,omitempty"      yaml:"host,omitempty"`
	PageSize int    `json:"page_size,omitempty" yaml:"page_size,omitempty"`
	RetryMax int    `json:"retry_max,omitempty" yaml:"retry_max,omitempty"`
}

// PorkbunSettings configures the Porkbun client.
type PorkbunSettings struct {
	APIKey       string `json:"apikey,omitempty"       yaml:"apikey,omitempty"`
	SecretAPIKey string `json:"secretapikey,omitempty" yaml:"secretapikey,omitempty"`
	BaseURL      string `json:"base_url,omitempty"     yaml:"base_url,omitempty"`
	RetryMax     int    `json:"retry_max,omitempty"    yaml:"retry_max,omitempty"`
}

// configKey binds a dotted key to its field.
type configKey struct {
	secret bool
	get    func(*Config) string
	set    func(*Config, string) error
}

func stringKey(field func(*Config) *string, secret bool) configKey {
	return configKey{
		secret: secret,
		get:    func(c *Config) string { return *field(c) },
		set: func(c *Config, value string) error {
			*field(c) = value

			return nil
		},
	}
}

func intKey(field func(*Config) *int) configKey {
	return configKey{
		get: func(c *Config) string {
			if *field(c) == 0 {
				return ""
			}

			return strconv.Itoa(*field(c))
		},
		set: func(c *Config, value string) error {
			if value == "" {
				*field(c) = 0

				return nil
			}

			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", value, err)
			}

			*field(c) = parsed

			return nil
		},
	}
}

var configKeys = map[string]configKey{
	"output":               stringKey(func(c *Config) *string { return &c.Output }, false),
	"namecom.username":     stringKey(func(c *Config) *string { return &c.NameCom.Username }, false),
	"namecom.token":        stringKey(func(c *Config) *string { return &c.NameCom.Token }, true),
	"namecom.host":         stringKey(func(c *Config) *string { return &c.NameCom.Host }, false),
	"namecom.page_size":    intKey(func(c *Config) *int { return &c.NameCom.PageSize }),
	"namecom.retry_max":    intKey(func(c *Config) *int { return &c.NameCom.RetryMax }),
	"porkbun.apikey":       stringKey(func(c *Config) *string { return &c.Porkbun.APIKey }, true),
	"porkbun.secretapikey": stringKey(func(c *Config) *string { return &c.Porkbun.SecretAPIKey }, true),
	"porkbun.base_url":     stringKey(func(c *Config) *string { return &c.Porkbun.BaseURL }, false),
	"porkbun.retry_max":    intKey(func(c *Config) *int { return &c.Porkbun.RetryMax }),
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the registrar CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := maskSecrets(loadConfig())

			return render(cmd.OutOrStdout(), config, func() tableData {
				keys := make([]string, 0, len(configKeys))
				for key := range configKeys {
					keys = append(keys, key)
				}

				sort.Strings(keys)

				data := tableData{header: []string{"Key", "Value"}}
				for _, key := range keys {
					data.rows = append(data.rows, []string{key, orNA(configKeys[key].get(config))})
				}

				return data
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value such as namecom.username or porkbun.base_url",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Set %s", args[0]))
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			return renderMessage(cmd.OutOrStdout(), fmt.Sprintf("Unset %s", args[0]))
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	binding, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	if key == "output" && value != "" {
		viper.Set("output", value)

		_, err := outputFormat()
		if err != nil {
			return err
		}
	}

	err := binding.set(config, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	viper.Set(key, value)

	return nil
}

// loadConfig reads the effective configuration: file, environment and flags
// merged by viper.
func loadConfig() *Config {
	return &Config{
		Output: viper.GetString("output"),
		NameCom: NameComSettings{
			Username: viper.GetString("namecom.username"),
			Token:    viper.GetString("namecom.token"),
			Host:     viper.GetString("namecom.host"),
			PageSize: viper.GetInt("namecom.page_size"),
			RetryMax: viper.GetInt("namecom.retry_max"),
		},
		Porkbun: PorkbunSettings{
			APIKey:       viper.GetString("porkbun.apikey"),
			SecretAPIKey: viper.GetString("porkbun.secretapikey"),
			BaseURL:      viper.GetString("porkbun.base_url"),
			RetryMax:     viper.GetInt("porkbun.retry_max"),
		},
	}
}

func maskSecrets(config *Config) *Config {
	masked := *config

	for _, binding := range configKeys {
		if binding.secret && binding.get(&masked) != "" {
			_ = binding.set(&masked, constants.MaskedSecret)
		}
	}

	return &masked
}

// configFilePath returns the file in use, or the default location.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
