//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/registrar-client/internal/teardown"
	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/porkbun"
	"github.com/fivetwenty-io/registrar-client/pkg/registrarclient"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	configDir       = "config"
	teardownTimeout = 2 * time.Minute
	shortIDLength   = 8
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	NameCom NameComTestConfig `yaml:"namecom"`
	Porkbun PorkbunTestConfig `yaml:"porkbun"`
}

// NameComTestConfig names the sandbox domain and its credentials.
type NameComTestConfig struct {
	Domain      string `yaml:"domain"`
	Host        string `yaml:"host"`
	Credentials struct {
		Username string `yaml:"username"`
		Token    string `yaml:"token"`
	} `yaml:"credentials"`
}

// PorkbunTestConfig names a domain the account owns and its API keys.
type PorkbunTestConfig struct {
	Domain      string `yaml:"domain"`
	Credentials struct {
		APIKey       string `yaml:"apikey"`
		SecretAPIKey string `yaml:"secretapikey"`
	} `yaml:"credentials"`
}

var (
	// cleanup collects teardown jobs for the whole test binary.
	cleanup *teardown.Queue
	// testConfig is loaded once in TestMain.
	testConfig *TestConfig
)

// LoadTestConfig reads config/default.yaml, then config/local.yaml when it
// exists, then REGISTRAR_IT_* environment variables.
func LoadTestConfig() (*TestConfig, error) {
	config := &TestConfig{}

	for _, name := range []string{"default.yaml", "local.yaml"} {
		data, err := os.ReadFile(filepath.Join(configDir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		err = yaml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	overrides := map[string]*string{
		"REGISTRAR_IT_NAMECOM_DOMAIN":       &config.NameCom.Domain,
		"REGISTRAR_IT_NAMECOM_HOST":         &config.NameCom.Host,
		"REGISTRAR_IT_NAMECOM_USERNAME":     &config.NameCom.Credentials.Username,
		"REGISTRAR_IT_NAMECOM_TOKEN":        &config.NameCom.Credentials.Token,
		"REGISTRAR_IT_PORKBUN_DOMAIN":       &config.Porkbun.Domain,
		"REGISTRAR_IT_PORKBUN_APIKEY":       &config.Porkbun.Credentials.APIKey,
		"REGISTRAR_IT_PORKBUN_SECRETAPIKEY": &config.Porkbun.Credentials.SecretAPIKey,
	}

	for env, field := range overrides {
		if value, ok := os.LookupEnv(env); ok {
			*field = value
		}
	}

	return config, nil
}

// nameComClient returns a sandbox client, skipping the test without credentials.
func nameComClient(t *testing.T) namecom.Client {
	t.Helper()

	settings := testConfig.NameCom
	if settings.Credentials.Username == "" || settings.Credentials.Token == "" {
		t.Skip("Name.com credentials not configured, skipping integration test")
	}

	client, err := registrarclient.NewNameCom(&namecom.Config{
		Username: settings.Credentials.Username,
		Token:    settings.Credentials.Token,
		Host:     settings.Host,
	})
	if err != nil {
		t.Fatalf("creating Name.com client: %v", err)
	}

	return client
}

// porkbunClient returns a live client, skipping the test without keys or a domain.
func porkbunClient(t *testing.T) porkbun.Client {
	t.Helper()

	settings := testConfig.Porkbun
	if settings.Credentials.APIKey == "" || settings.Credentials.SecretAPIKey == "" {
		t.Skip("Porkbun credentials not configured, skipping integration test")
	}

	client, err := registrarclient.NewPorkbun(&porkbun.Config{
		APIKey:       settings.Credentials.APIKey,
		SecretAPIKey: settings.Credentials.SecretAPIKey,
	})
	if err != nil {
		t.Fatalf("creating Porkbun client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique label such as "test-fwd-1a2b3c4d".
func GenerateTestName(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:shortIDLength]
}

// registerCleanup queues job for the end of the run, logging when the queue
// refuses it.
func registerCleanup(t *testing.T, name string, job teardown.Job) {
	t.Helper()

	err := cleanup.Register(name, job)
	if err != nil {
		t.Logf("cleanup of %s not registered: %v", name, err)
	}
}

// drainCleanup runs the queued jobs before the binary exits.
func drainCleanup() error {
	ctx, cancel := context.WithTimeout(context.Background(), teardownTimeout)
	defer cancel()

	return cleanup.Close(ctx)
}
