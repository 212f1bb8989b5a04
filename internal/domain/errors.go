// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request or entity fails validation.
	// This is usually wrapped in a ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is returned when a numeric parameter is outside its bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrTooLong is returned when a string parameter exceeds its maximum length.
	ErrTooLong = errors.New("value too long")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. The wrapped error
// defaults to ErrValidation when err is nil.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation for every ValidationError so callers can match
// the whole class without knowing the specific cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
