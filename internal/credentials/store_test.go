package credentials_test

import (
	"testing"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/internal/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		vendor string
		want   []string
	}{
		{vendor: "namecom", want: []string{credentials.FieldUsername, credentials.FieldToken}},
		{vendor: "Name.com", want: []string{credentials.FieldUsername, credentials.FieldToken}},
		{vendor: " porkbun ", want: []string{credentials.FieldAPIKey, credentials.FieldSecretAPIKey}},
	}

	for _, testCase := range tests {
		t.Run(testCase.vendor, func(t *testing.T) {
			t.Parallel()

			fields, err := credentials.Fields(testCase.vendor)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, fields)
		})
	}

	_, err := credentials.Fields("gandi")
	require.ErrorIs(t, err, constants.ErrUnknownVendor)
}

func TestMockStore(t *testing.T) {
	t.Parallel()

	store := credentials.NewMockStore()

	_, err := store.Get("porkbun", credentials.FieldAPIKey)
	require.ErrorIs(t, err, constants.ErrCredentialsNotFound)

	require.NoError(t, store.Set("porkbun", credentials.FieldAPIKey, "pk1_test"))
	require.NoError(t, store.Set("porkbun", credentials.FieldSecretAPIKey, "sk1_test"))

	secret, err := store.Get("Porkbun", credentials.FieldAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "pk1_test", secret)

	require.NoError(t, credentials.DeleteAll(store, "porkbun"))
	require.NoError(t, credentials.DeleteAll(store, "porkbun"))

	_, err = store.Get("porkbun", credentials.FieldSecretAPIKey)
	require.ErrorIs(t, err, constants.ErrCredentialsNotFound)
}

//nolint:paralleltest // keyring.MockInit swaps a process-wide provider
func TestKeyringStore(t *testing.T) {
	keyring.MockInit()

	store := credentials.NewKeyringStore("")

	_, err := store.Get("namecom", credentials.FieldToken)
	require.ErrorIs(t, err, constants.ErrCredentialsNotFound)

	require.NoError(t, store.Set("namecom", credentials.FieldUsername, "user"))
	require.NoError(t, store.Set("namecom", credentials.FieldToken, "token"))

	secret, err := store.Get("name.com", credentials.FieldToken)
	require.NoError(t, err)
	assert.Equal(t, "token", secret)

	require.NoError(t, store.Delete("namecom", credentials.FieldToken))
	require.ErrorIs(t, store.Delete("namecom", credentials.FieldToken), constants.ErrCredentialsNotFound)
	require.NoError(t, credentials.DeleteAll(store, "namecom"))
}
