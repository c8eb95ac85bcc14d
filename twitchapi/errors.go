package twitchapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates the client could not be built from the given options
	ErrInvalidConfig = errors.New("invalid twitch api client configuration")
	// ErrTransport indicates the request could not be sent or completed
	ErrTransport = errors.New("twitch api request failed")
	// ErrDecode indicates the response body does not match the expected schema
	ErrDecode = errors.New("failed to decode twitch api response")
)

// APIError is returned when the service answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("twitch api error: GET %s: status %d: %s", e.URL, e.StatusCode, e.Body)
}

// IsNotFound reports whether the requested resource does not exist.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// MissingFieldError reports a required key that is absent or null.
type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Record, e.Field)
}

// Is makes a MissingFieldError match ErrDecode.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrDecode
}
