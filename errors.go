package fincra

import (
	"errors"
	"fmt"
)

// ErrInvalidSignature is returned by ProcessWebhook when the payload signature
// is missing or does not match. The payload is never parsed in that case.
var ErrInvalidSignature = errors.New("fincra: invalid webhook signature")

// defaultValidationMessage is used when a ValidationError is constructed
// without an explicit message.
const defaultValidationMessage = "A required parameter is missing"

// ValidationError indicates that a required input field is missing or unusable.
// It is always resolved before any network call is made, so callers can treat
// it as "fix your request" rather than "retry the call".
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
// An empty message falls back to a generic one.
func NewValidationError(message string) *ValidationError {
	if message == "" {
		message = defaultValidationMessage
	}
	return &ValidationError{Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "fincra: " + e.Message
}

// APIError represents any non-success outcome of an API call: a business-level
// failure (the decoded body carries a falsy status), an HTTP 4xx/5xx, or a
// transport/decode failure. Code is the HTTP status when one is known and 0
// otherwise, so callers can branch on Code to decide retry eligibility:
// Code 0 with a decoded message means the request itself was rejected by the
// API, while a 5xx Code points at a transient upstream condition.
type APIError struct {
	Message string
	Code    int
	Err     error `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("fincra: %s (status %d)", e.Message, e.Code)
	}
	return "fincra: " + e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// newAPIError creates an APIError with the given message, HTTP status code
// (0 when unknown) and optional underlying error.
func newAPIError(message string, code int, err error) *APIError {
	return &APIError{
		Message: message,
		Code:    code,
		Err:     err,
	}
}
