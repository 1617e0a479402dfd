package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable wraps transport-level failures (connection refused, DNS,
// timeout) where no HTTP response was received.
var ErrUnreachable = errors.New("api unreachable")

// Error is a non-2xx response from the server. Message is the response
// body's "message" field and stays empty when the server sent none, so
// callers can apply their own fallback wording.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, message)
}

// Temporary reports whether the failure class is worth retrying by an
// embedding application. The session core never retries.
func (e *Error) Temporary() bool {
	return e.StatusCode >= 500
}

func newError(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}
