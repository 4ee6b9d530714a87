package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the backend answers 401. Callers decide
	// whether to prompt for a new login; nothing redirects automatically.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNothingSelected is returned when a bulk operation is invoked with an
	// empty id list.
	ErrNothingSelected = errors.New("nothing selected")
)

// APIError carries a backend error response: the HTTP status, the
// server-provided message when one could be decoded, and any per-field
// validation errors.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
	wrapped error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.wrapped }

// NewAPIError builds an APIError. A 401 status additionally wraps
// ErrUnauthorized so callers can match with errors.Is.
func NewAPIError(status int, message string, fields map[string]string) *APIError {
	e := &APIError{Status: status, Message: message, Fields: fields}
	if status == http.StatusUnauthorized {
		e.wrapped = ErrUnauthorized
	}
	return e
}

// UserMessage returns the server message when present, otherwise a generic
// fallback suitable for a toast.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "something went wrong, please try again"
}
