package backend

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when a 401 cannot be recovered: there is no
// refresh token, or the refresh call itself failed. The caller is expected
// to treat this as a forced sign-out, not as a per-request failure.
var ErrSessionExpired = errors.New("staff session expired")

// ServerError carries a non-2xx backend response together with the message
// from the {message, data} envelope, when one was present.
type ServerError struct {
	// StatusCode is the HTTP status returned by the backend.
	StatusCode int
	// Message is the server-supplied error description.
	Message string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}
