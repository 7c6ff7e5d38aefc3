// Package credentials keeps registrar secrets in the OS keychain.
package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/zalando/go-keyring"
)

// ServiceName is the keychain service every secret is filed under.
const ServiceName = "registrar-client"

// Secret fields per vendor.
const (
	FieldUsername     = "username"
	FieldToken        = "token"
	FieldAPIKey       = "apikey"
	FieldSecretAPIKey = "secretapikey"
)

// Store persists one secret per vendor and field.
type Store interface {
	Set(vendor, field, secret string) error
	Get(vendor, field string) (string, error)
	Delete(vendor, field string) error
}

// Fields lists the secrets a vendor needs, in prompt order.
func Fields(vendor string) ([]string, error) {
	switch NormalizeVendor(vendor) {
	case constants.VendorNameCom:
		return []string{FieldUsername, FieldToken}, nil
	case constants.VendorPorkbun:
		return []string{FieldAPIKey, FieldSecretAPIKey}, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownVendor, vendor)
	}
}

// NormalizeVendor lower-cases vendor and folds the "name.com" spelling.
func NormalizeVendor(vendor string) string {
	normalized := strings.ToLower(strings.TrimSpace(vendor))
	if normalized == "name.com" {
		return constants.VendorNameCom
	}

	return normalized
}

// DeleteAll removes every secret of vendor. Missing secrets are skipped.
func DeleteAll(store Store, vendor string) error {
	fields, err := Fields(vendor)
	if err != nil {
		return err
	}

	for _, field := range fields {
		err := store.Delete(vendor, field)
		if err != nil && !errors.Is(err, constants.ErrCredentialsNotFound) {
			return fmt.Errorf("deleting %s %s: %w", vendor, field, err)
		}
	}

	return nil
}

func key(vendor, field string) string {
	return NormalizeVendor(vendor) + "." + field
}

// KeyringStore is a Store backed by the OS keychain.
type KeyringStore struct {
	serviceName string
}

// NewKeyringStore creates a keychain store. Empty serviceName means
// ServiceName.
func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}

	return &KeyringStore{serviceName: serviceName}
}

// DefaultStore returns the store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// Set implements Store.
func (k *KeyringStore) Set(vendor, field, secret string) error {
	err := keyring.Set(k.serviceName, key(vendor, field), secret)
	if err != nil {
		return fmt.Errorf("storing %s %s: %w", vendor, field, err)
	}

	return nil
}

// Get implements Store.
func (k *KeyringStore) Get(vendor, field string) (string, error) {
	secret, err := keyring.Get(k.serviceName, key(vendor, field))
	if err == nil {
		return secret, nil
	}

	if errors.Is(err, keyring.ErrNotFound) {
		return "", constants.ErrCredentialsNotFound
	}

	return "", fmt.Errorf("reading %s %s: %w", vendor, field, err)
}

// Delete implements Store.
func (k *KeyringStore) Delete(vendor, field string) error {
	err := keyring.Delete(k.serviceName, key(vendor, field))
	if errors.Is(err, keyring.ErrNotFound) {
		return constants.ErrCredentialsNotFound
	}

	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", vendor, field, err)
	}

	return nil
}
