package registrar_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api error",
			err:  &registrar.APIError{StatusCode: http.StatusNotFound, Message: "Not Found"},
			want: "API error: Not Found",
		},
		{
			name: "api error with details",
			err:  &registrar.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Invalid Argument", Details: "domainName is required"},
			want: "API error: Invalid Argument (domainName is required)",
		},
		{
			name: "transport error with status",
			err:  &registrar.TransportError{Method: http.MethodPost, URL: "https://api.porkbun.com/api/json/v3/ping", StatusCode: http.StatusBadGateway},
			want: "HTTP request failed: POST https://api.porkbun.com/api/json/v3/ping: unexpected status 502",
		},
		{
			name: "transport error",
			err:  &registrar.TransportError{Method: http.MethodGet, URL: "https://api.name.com/core/v1/hello", Err: context.DeadlineExceeded},
			want: "HTTP request failed: GET https://api.name.com/core/v1/hello: context deadline exceeded",
		},
		{
			name: "decode error",
			err:  &registrar.DecodeError{Err: registrar.ErrEmptyResponse},
			want: "failed to parse JSON: response body is empty",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.err.Error())
		})
	}
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting domain: %w", &registrar.APIError{StatusCode: http.StatusNotFound, Message: "Not Found"})
	unauthorized := fmt.Errorf("hello: %w", &registrar.APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"})
	transport := fmt.Errorf("listing: %w", &registrar.TransportError{Err: context.Canceled})
	decode := fmt.Errorf("pinging: %w", &registrar.DecodeError{Err: registrar.ErrMissingStatus})

	assert.True(t, registrar.IsAPIError(notFound))
	assert.True(t, registrar.IsNotFound(notFound))
	assert.False(t, registrar.IsUnauthorized(notFound))

	assert.True(t, registrar.IsUnauthorized(unauthorized))
	assert.False(t, registrar.IsNotFound(unauthorized))

	assert.True(t, registrar.IsTransportError(transport))
	assert.ErrorIs(t, transport, context.Canceled)
	assert.False(t, registrar.IsAPIError(transport))

	assert.True(t, registrar.IsDecodeError(decode))
	assert.ErrorIs(t, decode, registrar.ErrMissingStatus)

	assert.True(t, registrar.IsNotFound(fmt.Errorf("retrieving: %w", registrar.ErrRecordNotFound)))
}
