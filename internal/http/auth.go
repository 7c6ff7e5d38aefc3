package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// Authenticator applies a client's credentials to every outgoing request.
// A client is built with exactly one strategy; requests never choose.
type Authenticator interface {
	// EncodeBody serializes the caller's payload, adding any credentials the
	// strategy carries in the body. A nil payload may still yield a body.
	EncodeBody(body interface{}) ([]byte, error)
	// ApplyHeaders sets any credential headers.
	ApplyHeaders(header http.Header)
}

// BasicAuth sends credentials as an HTTP Basic Authorization header and
// leaves the payload untouched.
type BasicAuth struct {
	Username string
	Password string
}

// EncodeBody implements Authenticator.
func (a BasicAuth) EncodeBody(body interface{}) ([]byte, error) {
	return encodeJSON(body)
}

// ApplyHeaders implements Authenticator.
func (a BasicAuth) ApplyHeaders(header http.Header) {
	(&http.Request{Header: header}).SetBasicAuth(a.Username, a.Password)
}

// EmbeddedAuth merges credential fields into the top level of the JSON body.
// No Authorization header is sent.
type EmbeddedAuth struct {
	Fields map[string]string
}

// EncodeBody implements Authenticator.
func (a EmbeddedAuth) EncodeBody(body interface{}) ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(a.Fields))

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		if string(data) != "null" {
			err = json.Unmarshal(data, &merged)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", registrar.ErrBodyNotObject, err)
			}
		}
	}

	for key, value := range a.Fields {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding credential field %q: %w", key, err)
		}

		merged[key] = encoded
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return data, nil
}

// ApplyHeaders implements Authenticator.
func (a EmbeddedAuth) ApplyHeaders(http.Header) {}

func encodeJSON(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return data, nil
}
