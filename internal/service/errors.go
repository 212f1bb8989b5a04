package service

import (
	"errors"
	"fmt"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
var (
	// ErrPostNotFound indicates that no visible post matches the author and slug.
	// API layer should map this to HTTP 404 Not Found.
	ErrPostNotFound = errors.New("post not found")
)

// ServiceError wraps errors from a read service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "list_posts", "get_post")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// It returns known sentinel errors and validation errors directly without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrPostNotFound) || errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
