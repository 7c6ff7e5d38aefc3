package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	regohttp "github.com/fivetwenty-io/registrar-client/internal/http"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request with basic auth", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/core/v1/hello", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			username, password, ok := request.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "user", username)
			assert.Equal(t, "token", password)

			_ = json.NewEncoder(writer).Encode(map[string]string{"serverName": "api01"})
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, regohttp.BasicAuth{Username: "user", Password: "token"})

		resp, err := client.Get(context.Background(), "/core/v1/hello", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string

		require.NoError(t, json.Unmarshal(resp.Body, &result))
		assert.Equal(t, "api01", result["serverName"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/core/v1/domains", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/core/v1/domains", url.Values{"page": []string{"2"}})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, map[string]string{"domainName": "example.org"}, body)

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, regohttp.BasicAuth{Username: "u", Password: "p"})

		resp, err := client.Post(context.Background(), "/core/v1/domains", map[string]string{"domainName": "example.org"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("non-2xx status is returned, not interpreted", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"Not Found"}`))
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/core/v1/domains/missing.org", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Not Found"}`, string(resp.Body))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "test-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, nil, regohttp.WithUserAgent("test-agent"))

		resp, err := client.Do(context.Background(), &regohttp.Request{
			Method:  http.MethodGet,
			Path:    "/test",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := regohttp.NewClient(server.URL, nil, regohttp.WithLogger(logger), regohttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)

		var messages []string
		for _, entry := range logger.logs {
			messages = append(messages, entry["msg"].(string))
		}

		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")
	})

	t.Run("unauthenticated request skips credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))

			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{}`, string(body))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, regohttp.BasicAuth{Username: "u", Password: "p"})

		_, err := client.Do(context.Background(), &regohttp.Request{
			Method:          http.MethodPost,
			Path:            "/pricing/get",
			Body:            struct{}{},
			Unauthenticated: true,
		})
		require.NoError(t, err)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*regohttp.Client, context.Context) (*regohttp.Response, error)
	}{
		{
			name:   "GET",
			method: http.MethodGet,
			fn: func(c *regohttp.Client, ctx context.Context) (*regohttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: http.MethodPost,
			fn: func(c *regohttp.Client, ctx context.Context) (*regohttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: http.MethodPut,
			fn: func(c *regohttp.Client, ctx context.Context) (*regohttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: http.MethodPatch,
			fn: func(c *regohttp.Client, ctx context.Context) (*regohttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: http.MethodDelete,
			fn: func(c *regohttp.Client, ctx context.Context) (*regohttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := regohttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestEmbeddedAuth(t *testing.T) {
	t.Parallel()

	auth := regohttp.EmbeddedAuth{Fields: map[string]string{"apikey": "pk1_x", "secretapikey": "sk1_y"}}

	t.Run("merges credentials alongside caller fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))

			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{"apikey":"pk1_x","secretapikey":"sk1_y","name":"www","type":"A"}`, string(body))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, auth)

		_, err := client.Post(context.Background(), "/dns/create/example.com", map[string]string{"name": "www", "type": "A"})
		require.NoError(t, err)
	})

	t.Run("nil body carries only credentials", func(t *testing.T) {
		t.Parallel()

		body, err := auth.EncodeBody(nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"apikey":"pk1_x","secretapikey":"sk1_y"}`, string(body))
	})

	t.Run("non-object body is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := auth.EncodeBody([]string{"a"})
		require.Error(t, err)
		assert.ErrorIs(t, err, registrar.ErrBodyNotObject)
	})
}

func TestBasicAuth_LeavesBodyUntouched(t *testing.T) {
	t.Parallel()

	body, err := regohttp.BasicAuth{Username: "u", Password: "p"}.EncodeBody(map[string]int{"ttl": 300})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ttl":300}`, string(body))

	body, err = regohttp.BasicAuth{}.EncodeBody(nil)
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestBasicAuth_ApplyHeaders(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	regohttp.BasicAuth{Username: "alice", Password: "s3cr:et"}.ApplyHeaders(header)

	assert.Equal(t, "Basic YWxpY2U6czNjcjpldA==", header.Get("Authorization"))

	user, password, ok := (&http.Request{Header: header}).BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "alice", user)
	assert.Equal(t, "s3cr:et", password)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte("boom"))
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "boom", string(resp.Body))
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, nil, regohttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("exhausted retries pass the last response through", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, nil, regohttp.WithRetryConfig(1, 10*time.Millisecond, 20*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := regohttp.NewClient(server.URL, nil, regohttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})
}

func TestClient_TransportFailures(t *testing.T) {
	t.Parallel()

	t.Run("canceled context aborts the exchange", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := regohttp.NewClient(server.URL, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/slow", nil)
		require.Error(t, err)

		transportErr := &registrar.TransportError{}
		require.True(t, errors.As(err, &transportErr))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := regohttp.NewClient(serverURL, nil)

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.True(t, registrar.IsTransportError(err))
	})
}
