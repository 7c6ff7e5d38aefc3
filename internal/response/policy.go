// Package response classifies raw vendor responses into decoded values or
// one of the registrar error kinds.
package response

import (
	"encoding/json"

	"github.com/fivetwenty-io/registrar-client/internal/http"
	"github.com/fivetwenty-io/registrar-client/pkg/registrar"
)

// Policy turns one raw response into a decoded value or an error. A client
// is bound to exactly one Policy for its lifetime.
type Policy interface {
	// Decode classifies resp and on success decodes its body into out.
	// A nil out marks a void operation whose body is ignored.
	Decode(resp *http.Response, out interface{}) error
}

func decodeBody(resp *http.Response, out interface{}) error {
	if len(resp.Body) == 0 {
		return &registrar.DecodeError{StatusCode: resp.StatusCode, Err: registrar.ErrEmptyResponse}
	}

	err := json.Unmarshal(resp.Body, out)
	if err != nil {
		return &registrar.DecodeError{StatusCode: resp.StatusCode, Body: resp.Body, Err: err}
	}

	return nil
}
