package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/quillpress/quill-api/internal/store"
)

// Option configures a Postgres store.
type Option func(*reader)

// WithSnapshotReads controls whether multi-statement reads share one
// read-only REPEATABLE READ transaction. It is enabled by default.
func WithSnapshotReads(enabled bool) Option {
	return func(r *reader) {
		r.snapshot = enabled
	}
}

// reader runs the statements of one logical read either inside a snapshot
// transaction or directly on the pool, one after another.
type reader struct {
	db       store.DB
	snapshot bool
}

func newReader(db store.DB, opts []Option) reader {
	r := reader{db: db, snapshot: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r reader) read(ctx context.Context, fn func(q store.DBTX) error) error {
	if !r.snapshot {
		return fn(r.db)
	}
	return store.RunInTransaction(ctx, r.db, store.ReadSnapshot, func(ctx context.Context, tx pgx.Tx) error {
		return fn(tx)
	})
}
