package backend

import (
	"errors"
	"net/http"
)

// ErrAuthExpired marks 401 responses from the fitness API. The client itself
// performs no redirect; the web layer reacts by clearing the session and
// sending the user to the login page.
var ErrAuthExpired = errors.New("authentication expired")

// ErrInvalidResponse is returned when a 2xx response body is not a valid
// envelope.
var ErrInvalidResponse = errors.New("Invalid API response")

// APIError carries the human-readable message of a failed API call, suitable
// for direct display.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrAuthExpired
	}
	return nil
}
