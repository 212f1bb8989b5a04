package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/platform/logger"
	"github.com/quillpress/quill-api/internal/platform/metrics"
	"github.com/quillpress/quill-api/internal/query"
	"github.com/quillpress/quill-api/internal/store"
)

// PostgresTagStore implements the store.TagStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTagStore struct {
	reader
	logger *slog.Logger
}

// NewPostgresTagStore creates a new PostgreSQL implementation of the TagStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTagStore(db store.DB, logger *slog.Logger, opts ...Option) *PostgresTagStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTagStore{
		reader: newReader(db, opts),
		logger: logger.With(slog.String("component", "tag_store")),
	}
}

// Ensure PostgresTagStore implements store.TagStore interface
var _ store.TagStore = (*PostgresTagStore)(nil)

// List implements store.TagStore.List.
// Tags are ordered by name; the total counts every tag.
func (s *PostgresTagStore) List(ctx context.Context, limit, offset int) (domain.Page[domain.Tag], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("listing tags", slog.Int("limit", limit), slog.Int("offset", offset))

	stmts := query.ComposeTagList(limit, offset)
	start := time.Now()

	var total int64
	tags := make([]domain.Tag, 0)
	err := s.read(ctx, func(db store.DBTX) error {
		if err := db.QueryRow(ctx, stmts.Count.SQL, stmts.Count.Args...).Scan(&total); err != nil {
			return fmt.Errorf("count tags: %w", err)
		}
		if int64(offset) >= total {
			return nil
		}

		rows, err := db.Query(ctx, stmts.Fetch.SQL, stmts.Fetch.Args...)
		if err != nil {
			return fmt.Errorf("fetch tags: %w", err)
		}
		if tags, err = collectTags(rows); err != nil {
			return fmt.Errorf("scan tags: %w", err)
		}
		return nil
	})
	metrics.RecordQuery("list_tags", start, err)

	if err != nil {
		logReadFailure(log, "failed to list tags", err,
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return domain.Page[domain.Tag]{}, storeError("tag", "list", "failed to list tags", err)
	}

	metrics.RecordPage("list_tags", len(tags))
	return domain.NewPage(tags, total, limit, offset), nil
}
