package credentials

import (
	"sync"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
)

// MockStore is an in-memory Store for testing.
type MockStore struct {
	mu      sync.Mutex
	secrets map[string]string
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{secrets: make(map[string]string)}
}

// Set implements Store.
func (m *MockStore) Set(vendor, field, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.secrets[key(vendor, field)] = secret

	return nil
}

// Get implements Store.
func (m *MockStore) Get(vendor, field string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	secret, ok := m.secrets[key(vendor, field)]
	if !ok {
		return "", constants.ErrCredentialsNotFound
	}

	return secret, nil
}

// Delete implements Store.
func (m *MockStore) Delete(vendor, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.secrets[key(vendor, field)]; !ok {
		return constants.ErrCredentialsNotFound
	}

	delete(m.secrets, key(vendor, field))

	return nil
}
