// Package upstream defines the error taxonomy shared by the third-party API
// clients. Route handlers map these onto response status codes: missing
// credentials become a 500 configuration error, a StatusError mirrors the
// upstream status, and a malformed payload becomes a 422.
package upstream

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials indicates a required API key or secret was not
// configured. The credential name is never included in the error text.
var ErrMissingCredentials = errors.New("missing upstream credentials")

// ErrMalformedPayload indicates the upstream response parsed as JSON but did
// not contain the expected result structure.
var ErrMalformedPayload = errors.New("unexpected upstream response shape")

// maxBodyInError caps how much of an upstream error body is carried in the
// error text.
const maxBodyInError = 256

// StatusError is returned when an upstream API responds with a non-2xx
// status. Handlers propagate StatusCode to the client.
type StatusError struct {
	Backend    string
	StatusCode int
	Body       string
}

// NewStatusError builds a StatusError with the body truncated.
func NewStatusError(backend string, status int, body []byte) *StatusError {
	return &StatusError{
		Backend:    backend,
		StatusCode: status,
		Body:       Truncate(string(body), maxBodyInError),
	}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Backend, e.StatusCode, e.Body)
}

// Truncate shortens s to at most n bytes.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
