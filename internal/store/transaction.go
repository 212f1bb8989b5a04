package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/quillpress/quill-api/internal/platform/logger"
	"github.com/quillpress/quill-api/internal/redact"
)

// ReadSnapshot opens a read-only REPEATABLE READ transaction. Every
// statement run inside it observes the same snapshot, so a count and the
// page fetched after it agree with each other under concurrent writes.
var ReadSnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// TxFn is a function that executes within a database transaction.
// It receives the context and a transaction, and returns an error if the operation fails.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx pgx.Tx) error

// RunInTransaction executes the given function within a database transaction
// opened with opts. If the function returns an error, the transaction is
// rolled back. Otherwise, the transaction is committed.
// The function handles rollbacks in case of panic and logs appropriate information.
func RunInTransaction(ctx context.Context, db DB, opts pgx.TxOptions, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		log.Error("failed to begin transaction",
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(ctx); txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", redact.Error(txErr)),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", redact.Error(rollbackErr)),
				slog.String("original_error", redact.Error(err)))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", redact.Error(err)))
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: failed to commit transaction: %w", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed successfully")
	return nil
}
