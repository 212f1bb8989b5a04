package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quillpress/quill-api/internal/redact"
	"github.com/quillpress/quill-api/internal/store"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context and provide better debugging information.
//
// pgx.ErrNoRows becomes store.ErrNotFound. Context errors and
// store.ErrInvalidEntity scan failures are returned as they are. Everything
// else, including PostgreSQL server errors and connection failures, becomes
// store.ErrUnavailable.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if isContextError(err) || errors.Is(err, store.ErrUnavailable) || errors.Is(err, store.ErrInvalidEntity) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: postgres error %s: %w", store.ErrUnavailable, pgErr.Code, err)
	}

	return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// storeError maps err and attaches the entity and operation it came from.
// Context errors are returned without decoration.
func storeError(entity, operation, message string, err error) error {
	mapped := MapError(err)
	if isContextError(mapped) {
		return mapped
	}
	return store.NewStoreError(entity, operation, message, mapped)
}

// logReadFailure logs a failed read with its error redacted. Cancelled
// requests are logged at debug level since the client went away.
func logReadFailure(log *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", redact.Error(err)))
	if isContextError(err) {
		log.Debug(msg, attrs...)
		return
	}
	log.Error(msg, attrs...)
}
