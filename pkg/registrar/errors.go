package registrar

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError reports a failed HTTP exchange: network, TLS, DNS,
// cancellation, or an HTTP status the vendor never uses for API errors.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("HTTP request failed: %s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}

	return fmt.Sprintf("HTTP request failed: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that did not match the expected shape.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse JSON: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is a request rejected by the registrar. Message is the
// human-readable reason exactly as the vendor reported it.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("API error: %s (%s)", e.Message, e.Details)
	}

	return "API error: " + e.Message
}

// Static errors for err113 compliance.
var (
	ErrCredentialsRequired = errors.New("credentials are required")
	ErrConfigRequired      = errors.New("config is required")
	ErrRecordNotFound      = errors.New("record not found")
	ErrNoProgress          = errors.New("pagination cursor did not advance")
	ErrPageLimitExceeded   = errors.New("pagination exceeded the maximum number of pages")
	ErrUnexpectedStatus    = errors.New("unexpected HTTP status")
	ErrBodyNotObject       = errors.New("request body must encode to a JSON object")
	ErrEmptyResponse       = errors.New("response body is empty")
	ErrMissingStatus       = errors.New("response envelope has no status field")
)

// IsAPIError reports whether err carries an APIError.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsTransportError reports whether err carries a TransportError.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecodeError reports whether err carries a DecodeError.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrRecordNotFound) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}

	return false
}
