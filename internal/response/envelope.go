package response

import (
	"fmt"

	"github.com/fivetwenty-io/registrar-client/internal/constants"
	"github.com/fivetwenty-io/registrar-client/internal/http"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// EnvelopePolicy reads the outcome from a {status, message} envelope that
// wraps every body. The envelope is inspected on its own before the body is
// decoded into the caller's type, so that type may declare a status field
// of its own.
type EnvelopePolicy struct{}

type envelope struct {
	Status  *string `json:"status"`
	Message *string `json:"message"`
}

// Decode implements Policy.
func (EnvelopePolicy) Decode(resp *http.Response, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &registrar.TransportError{
			Method:     resp.Method,
			URL:        resp.URL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %d", registrar.ErrUnexpectedStatus, resp.StatusCode),
		}
	}

	var env envelope

	err := decodeBody(resp, &env)
	if err != nil {
		return err
	}

	if env.Status == nil {
		return &registrar.DecodeError{StatusCode: resp.StatusCode, Body: resp.Body, Err: registrar.ErrMissingStatus}
	}

	if *env.Status == constants.EnvelopeStatusError {
		message := constants.UnknownAPIErrorMessage
		if env.Message != nil {
			message = *env.Message
		}

		return &registrar.APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	return decodeBody(resp, out)
}
