package commands

import (
	"errors"
	"fmt"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/internal/credentials"
	"github.com/fivetwenty-io/registrar-client/internal/logging"
	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
	"github.com/fivetwenty-io/registrar-client/pkg/registrarclient"
	"github.com/spf13/viper"
)

// credentialStore is where auth login keeps secrets.
var credentialStore = credentials.DefaultStore

// secretOrStored returns configured when set, otherwise the keychain entry.
// A nil store only accepts configured values.
func secretOrStored(store credentials.Store, configured, vendor, field string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if store == nil {
		return "", fmt.Errorf("%s %s: %w", vendor, field, constants.ErrCredentialsNotFound)
	}

	secret, err := store.Get(vendor, field)
	if err != nil {
		if errors.Is(err, constants.ErrCredentialsNotFound) {
			return "", fmt.Errorf("%s %s: %w", vendor, field, constants.ErrCredentialsNotFound)
		}

		return "", err
	}

	return secret, nil
}

// cliLogger returns the logger handed to clients; debug request logging is
// enabled with --verbose.
func cliLogger() (registrar.Logger, error) {
	logger, err := logging.New(viper.GetBool("verbose"))
	if err != nil {
		return nil, err
	}

	return logging.NewZapLogger(logger), nil
}

func nameComConfig(settings NameComSettings, store credentials.Store) (*namecom.Config, error) {
	username, err := secretOrStored(store, settings.Username, constants.VendorNameCom, credentials.FieldUsername)
	if err != nil {
		return nil, err
	}

	token, err := secretOrStored(store, settings.Token, constants.VendorNameCom, credentials.FieldToken)
	if err != nil {
		return nil, err
	}

	return &namecom.Config{
		Username: username,
		Token:    token,
		Host:     settings.Host,
		PageSize: settings.PageSize,
		RetryMax: settings.RetryMax,
	}, nil
}

func porkbunConfig(settings PorkbunSettings, store credentials.Store) (*porkbun.Config, error) {
	apiKey, err := secretOrStored(store, settings.APIKey, constants.VendorPorkbun, credentials.FieldAPIKey)
	if err != nil {
		return nil, err
	}

	secretAPIKey, err := secretOrStored(store, settings.SecretAPIKey, constants.VendorPorkbun, credentials.FieldSecretAPIKey)
	if err != nil {
		return nil, err
	}

	return &porkbun.Config{
		APIKey:       apiKey,
		SecretAPIKey: secretAPIKey,
		BaseURL:      settings.BaseURL,
		RetryMax:     settings.RetryMax,
	}, nil
}

// newNameComClient builds a client from the configuration and keychain.
func newNameComClient() (namecom.Client, error) {
	config, err := nameComConfig(loadConfig().NameCom, credentialStore())
	if err != nil {
		return nil, err
	}

	config.Logger, err = cliLogger()
	if err != nil {
		return nil, err
	}

	config.Debug = viper.GetBool("verbose")

	return registrarclient.NewNameCom(config)
}

// newPorkbunClient builds a client from the configuration and keychain.
func newPorkbunClient() (porkbun.Client, error) {
	config, err := porkbunConfig(loadConfig().Porkbun, credentialStore())
	if err != nil {
		return nil, err
	}

	config.Logger, err = cliLogger()
	if err != nil {
		return nil, err
	}

	config.Debug = viper.GetBool("verbose")

	return registrarclient.NewPorkbun(config)
}

// newPorkbunPublicClient builds a client for unauthenticated endpoints; it
// needs no stored keys.
func newPorkbunPublicClient() (porkbun.PublicClient, error) {
	settings := loadConfig().Porkbun

	logger, err := cliLogger()
	if err != nil {
		return nil, err
	}

	return registrarclient.NewPorkbunPublic(&porkbun.Config{
		BaseURL:  settings.BaseURL,
		RetryMax: settings.RetryMax,
		Logger:   logger,
		Debug:    viper.GetBool("verbose"),
	})
}
