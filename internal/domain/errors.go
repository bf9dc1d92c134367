package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across packages. Handlers map these onto HTTP
// status codes; nothing here is fatal to the session.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrEmptyData     = errors.New("no data available")
	ErrExportFailure = errors.New("export failed")
	ErrUserNotFound  = errors.New("user not found")
)

// ValidationError rejects malformed filter or request input at the call
// boundary, before any state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
