package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quillpress/quill-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"}

	tests := []struct {
		name            string
		err             error
		wantNil         bool
		wantUnavailable bool
		wantNotFound    bool
		wantContext     error
	}{
		{name: "nil_error", err: nil, wantNil: true},
		{name: "no_rows", err: pgx.ErrNoRows, wantNotFound: true},
		{name: "postgres_error", err: pgErr, wantUnavailable: true},
		{name: "wrapped_postgres_error", err: fmt.Errorf("count posts: %w", pgErr), wantUnavailable: true},
		{name: "connection_error", err: errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"), wantUnavailable: true},
		{name: "already_unavailable", err: store.ErrUnavailable, wantUnavailable: true},
		{name: "invalid_entity", err: fmt.Errorf("scan posts: %w", store.ErrInvalidEntity)},
		{name: "context_canceled", err: context.Canceled, wantContext: context.Canceled},
		{name: "deadline_exceeded", err: fmt.Errorf("fetch posts: %w", context.DeadlineExceeded), wantContext: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)

			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.err)
			assert.Equal(t, tt.wantUnavailable, errors.Is(got, store.ErrUnavailable))
			assert.Equal(t, tt.wantNotFound, errors.Is(got, store.ErrNotFound))
			if tt.wantContext != nil {
				assert.ErrorIs(t, got, tt.wantContext)
				assert.Same(t, tt.err, got)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	driverErr := errors.New("connection reset by peer")

	err := storeError("post", "list", "failed to list posts", driverErr)

	var se *store.StoreError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "post", se.Entity)
	assert.Equal(t, "list", se.Operation)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.ErrorIs(t, err, driverErr)

	ctxErr := storeError("post", "list", "failed to list posts", context.Canceled)
	assert.Same(t, context.Canceled, ctxErr)
}
