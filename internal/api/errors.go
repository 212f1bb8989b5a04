package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/service"
	"github.com/quillpress/quill-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Bad request errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Backend unavailable, including requests whose deadline expired while
	// waiting on the database
	case errors.Is(err, store.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return "Service temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the envelope for err with the mapped status code and
// safe message, logging the redacted detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
