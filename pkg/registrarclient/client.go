// Package registrarclient provides the main entry point for creating registrar API clients
package registrarclient

import (
	"fmt"
	"strings"

	inamecom "github.com/fivetwenty-io/registrar-client/internal/namecom"
	iporkbun "github.com/fivetwenty-io/registrar-client/internal/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// NewNameCom creates a new Name.com API client.
func NewNameCom(config *namecom.Config) (namecom.Client, error) {
	if config == nil {
		return nil, registrar.ErrConfigRequired
	}

	normalized := *config
	normalized.Host = normalizeEndpoint(config.Host)

	client, err := inamecom.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create Name.com client: %w", err)
	}

	return client, nil
}

// NewPorkbun creates a new Porkbun API client.
func NewPorkbun(config *porkbun.Config) (porkbun.Client, error) {
	if config == nil {
		return nil, registrar.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeEndpoint(config.BaseURL)

	client, err := iporkbun.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create Porkbun client: %w", err)
	}

	return client, nil
}

// NewPorkbunPublic creates a Porkbun client for the endpoints that need no
// API keys, such as pricing. A nil config uses the defaults.
func NewPorkbunPublic(config *porkbun.Config) (porkbun.PublicClient, error) {
	normalized := porkbun.Config{}
	if config != nil {
		normalized = *config
	}

	normalized.BaseURL = normalizeEndpoint(normalized.BaseURL)

	client, err := iporkbun.NewPublic(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create Porkbun client: %w", err)
	}

	return client, nil
}

// NewNameComWithToken creates a production Name.com client from a username
// and API token.
func NewNameComWithToken(username, token string) (namecom.Client, error) {
	return NewNameCom(&namecom.Config{
		Username: username,
		Token:    token,
	})
}

// NewNameComSandbox creates a client against the Name.com development host.
// Sandbox accounts use their own token and a "-test" suffixed username.
func NewNameComSandbox(username, token string) (namecom.Client, error) {
	return NewNameCom(&namecom.Config{
		Username: username,
		Token:    token,
		Host:     namecom.DevelopmentHost,
	})
}

// NewPorkbunWithKeys creates a Porkbun client from an API key pair.
func NewPorkbunWithKeys(apiKey, secretAPIKey string) (porkbun.Client, error) {
	return NewPorkbun(&porkbun.Config{
		APIKey:       apiKey,
		SecretAPIKey: secretAPIKey,
	})
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
// Empty stays empty so the vendor default applies.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return ""
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
