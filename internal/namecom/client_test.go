package namecom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/fivetwenty-io/registrar-client/pkg/namecom"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts server and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, configure ...func(*namecom.Config)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := &namecom.Config{Username: "alice", Token: "secret", Host: server.URL}
	for _, fn := range configure {
		fn(config)
	}

	client, err := New(config)
	require.NoError(t, err)

	return client
}

func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(writer).Encode(body))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, registrar.ErrConfigRequired)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := New(&namecom.Config{Username: "alice"})
		require.ErrorIs(t, err, registrar.ErrCredentialsRequired)
	})

	t.Run("defaults to the production host", func(t *testing.T) {
		t.Parallel()

		client, err := New(&namecom.Config{Username: "alice", Token: "secret"})
		require.NoError(t, err)
		assert.Equal(t, namecom.ProductionHost, client.api.rest.Transport().BaseURL())
	})

	t.Run("page size is capped", func(t *testing.T) {
		t.Parallel()

		client, err := New(&namecom.Config{Username: "alice", Token: "secret", PageSize: 5000})
		require.NoError(t, err)
		assert.Equal(t, 1000, client.api.pageSize)
	})
}

func TestClient_Hello(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/core/v1/hello", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)

		username, token, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "secret", token)

		writeJSON(t, writer, http.StatusOK, namecom.Hello{
			Motd:       "Welcome",
			ServerName: "api01",
			ServerTime: "2026-10-18T10:00:00Z",
			Username:   "alice",
		})
	})

	hello, err := client.Hello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "api01", hello.ServerName)
	assert.Equal(t, "alice", hello.Username)
}

func TestClient_APIErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		wantMessage  string
		notFound     bool
		unauthorized bool
	}{
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"message":"Not Found"}`,
			wantMessage: "Not Found",
			notFound:    true,
		},
		{
			name:         "unauthorized",
			status:       http.StatusUnauthorized,
			body:         `{"message":"Unauthenticated"}`,
			wantMessage:  "Unauthenticated",
			unauthorized: true,
		},
		{
			name:        "raw body",
			status:      http.StatusInternalServerError,
			body:        "upstream timeout",
			wantMessage: "upstream timeout",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(testCase.status)
				_, _ = writer.Write([]byte(testCase.body))
			})

			_, err := client.Domains().Get(context.Background(), "example.org")
			require.Error(t, err)

			apiErr := &registrar.APIError{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, testCase.wantMessage, apiErr.Message)
			assert.Equal(t, testCase.notFound, registrar.IsNotFound(err))
			assert.Equal(t, testCase.unauthorized, registrar.IsUnauthorized(err))
		})
	}
}

func TestDNSRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	original := namecom.DNSRecord{
		ID:         12345,
		DomainName: "example.org",
		Host:       "www",
		FQDN:       "www.example.org.",
		Type:       "MX",
		Answer:     "mx.example.org",
		TTL:        300,
		Priority:   10,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded namecom.DNSRecord

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Empty(t, cmp.Diff(original, decoded))
}

func pagedDomains(total, perPage int) func(page int) listDomainsResponse {
	return func(page int) listDomainsResponse {
		var resp listDomainsResponse

		for id := (page-1)*perPage + 1; id <= page*perPage && id <= total; id++ {
			resp.Domains = append(resp.Domains, namecom.Domain{DomainName: "d" + strconv.Itoa(id) + ".org"})
		}

		if page*perPage < total {
			next := page + 1
			resp.NextPage = &next
		}

		last := (total + perPage - 1) / perPage
		resp.LastPage = &last

		return resp
	}
}
