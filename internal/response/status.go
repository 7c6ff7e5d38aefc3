package response

import (
	"encoding/json"
	nethttp "net/http"

	"github.com/fivetwenty-io/registrar-client/internal/http"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// StatusPolicy reads the outcome from the HTTP status code. 200 and 201
// carry a JSON body; 204 acknowledges a void operation. Every other status
// is an APIError whose message comes from a {message, details} body, or is
// the raw body text when that shape does not parse.
type StatusPolicy struct{}

// Decode implements Policy.
func (StatusPolicy) Decode(resp *http.Response, out interface{}) error {
	switch resp.StatusCode {
	case nethttp.StatusOK, nethttp.StatusCreated:
		if out == nil {
			return nil
		}

		return decodeBody(resp, out)
	case nethttp.StatusNoContent:
		if out == nil {
			return nil
		}

		return &registrar.DecodeError{StatusCode: resp.StatusCode, Err: registrar.ErrEmptyResponse}
	default:
		return statusError(resp)
	}
}

type errorBody struct {
	Message *string `json:"message"`
	Details string  `json:"details"`
}

func statusError(resp *http.Response) error {
	var body errorBody

	err := json.Unmarshal(resp.Body, &body)
	if err != nil || body.Message == nil {
		return &registrar.APIError{StatusCode: resp.StatusCode, Message: string(resp.Body)}
	}

	return &registrar.APIError{
		StatusCode: resp.StatusCode,
		Message:    *body.Message,
		Details:    body.Details,
	}
}
