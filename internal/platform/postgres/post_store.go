package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/platform/logger"
	"github.com/quillpress/quill-api/internal/platform/metrics"
	"github.com/quillpress/quill-api/internal/query"
	"github.com/quillpress/quill-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	reader
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// It accepts a pool (or anything else that can open transactions) that is
// initialized and managed by the caller. If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DB, logger *slog.Logger, opts ...Option) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		reader: newReader(db, opts),
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// List implements store.PostStore.List.
// It counts the visible posts matching filter, fetches the requested page in
// sort order, and attaches every post's tags with a single batched query.
// Bodies are cut to domain.PreviewLength runes.
func (s *PostgresPostStore) List(
	ctx context.Context,
	filter query.PostFilter,
	sort query.Sort,
	limit, offset int,
) (domain.Page[domain.Post], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	operation := "list_posts"
	if filter.Tag != "" {
		operation = "list_posts_by_tag"
	}

	log.Debug("listing posts",
		slog.String("tag", filter.Tag),
		slog.Bool("has_search", filter.Search != ""),
		slog.String("order_by", string(sort.Field)),
		slog.String("order_direction", string(sort.Direction)),
		slog.Int("limit", limit),
		slog.Int("offset", offset))

	stmts := query.ComposePostList(filter, sort, limit, offset)
	start := time.Now()

	var total int64
	posts := make([]domain.Post, 0)
	err := s.read(ctx, func(db store.DBTX) error {
		if err := db.QueryRow(ctx, stmts.Count.SQL, stmts.Count.Args...).Scan(&total); err != nil {
			return fmt.Errorf("count posts: %w", err)
		}

		// Nothing can be on the page, the fetch would come back empty.
		if int64(offset) >= total {
			return nil
		}

		rows, err := db.Query(ctx, stmts.Fetch.SQL, stmts.Fetch.Args...)
		if err != nil {
			return fmt.Errorf("fetch posts: %w", err)
		}
		if posts, err = collectPosts(rows); err != nil {
			return fmt.Errorf("scan posts: %w", err)
		}

		return attachTags(ctx, db, posts)
	})
	metrics.RecordQuery(operation, start, err)

	if err != nil {
		logReadFailure(log, "failed to list posts", err,
			slog.String("tag", filter.Tag),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return domain.Page[domain.Post]{}, storeError("post", "list", "failed to list posts", err)
	}

	previewAll(posts)
	metrics.RecordPage(operation, len(posts))

	log.Debug("posts listed",
		slog.Int64("total", total),
		slog.Int("returned", len(posts)))
	return domain.NewPage(posts, total, limit, offset), nil
}

// Random implements store.PostStore.Random.
// It samples up to limit visible posts with their tags and previews.
func (s *PostgresPostStore) Random(ctx context.Context, limit int) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("sampling random posts", slog.Int("limit", limit))

	stmt := query.RandomPosts(limit)
	start := time.Now()

	posts := make([]domain.Post, 0)
	err := s.read(ctx, func(db store.DBTX) error {
		rows, err := db.Query(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return fmt.Errorf("fetch random posts: %w", err)
		}
		if posts, err = collectPosts(rows); err != nil {
			return fmt.Errorf("scan random posts: %w", err)
		}
		return attachTags(ctx, db, posts)
	})
	metrics.RecordQuery("random_posts", start, err)

	if err != nil {
		logReadFailure(log, "failed to sample random posts", err, slog.Int("limit", limit))
		return nil, storeError("post", "random", "failed to sample posts", err)
	}

	previewAll(posts)
	metrics.RecordPage("random_posts", len(posts))
	return posts, nil
}

// FindByAuthorAndSlug implements store.PostStore.FindByAuthorAndSlug.
// The full body is returned. A missing, unpublished or deleted post yields
// (nil, nil).
func (s *PostgresPostStore) FindByAuthorAndSlug(
	ctx context.Context,
	username, slug string,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving post by author and slug",
		slog.String("username", username),
		slog.String("slug", slug))

	stmt := query.PostBySlug(username, slug)
	start := time.Now()

	var post *domain.Post
	err := s.read(ctx, func(db store.DBTX) error {
		p, err := scanPost(db.QueryRow(ctx, stmt.SQL, stmt.Args...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("fetch post: %w", err)
		}
		if err := attachPostTags(ctx, db, &p); err != nil {
			return err
		}
		post = &p
		return nil
	})
	metrics.RecordQuery("find_post", start, err)

	if err != nil {
		logReadFailure(log, "failed to get post by author and slug", err,
			slog.String("username", username),
			slog.String("slug", slug))
		return nil, storeError("post", "get", "failed to get post", err)
	}

	if post == nil {
		log.Debug("post not found",
			slog.String("username", username),
			slog.String("slug", slug))
		return nil, nil
	}

	log.Debug("post retrieved successfully",
		slog.String("post_id", post.ID.String()),
		slog.Int("tag_count", len(post.Tags)))
	return post, nil
}

func previewAll(posts []domain.Post) {
	for i := range posts {
		posts[i].Preview(domain.PreviewLength)
	}
}
