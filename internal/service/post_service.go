package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/platform/logger"
	"github.com/quillpress/quill-api/internal/query"
	"github.com/quillpress/quill-api/internal/store"
)

// PostService provides read access to published posts.
type PostService interface {
	// ListPosts returns one page of visible posts, optionally searched and sorted.
	ListPosts(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Post], error)

	// ListPostsByTag is ListPosts restricted to posts carrying the named tag.
	ListPostsByTag(ctx context.Context, tag string, req domain.PageRequest) (domain.Page[domain.Post], error)

	// RandomPosts samples up to limit visible posts.
	RandomPosts(ctx context.Context, limit int) ([]domain.Post, error)

	// GetPost returns the full post identified by its author and slug, or
	// ErrPostNotFound.
	GetPost(ctx context.Context, username, slug string) (*domain.Post, error)
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostService creates a new PostService backed by posts.
func NewPostService(posts store.PostStore, logger *slog.Logger) (PostService, error) {
	if posts == nil {
		return nil, domain.NewValidationError("posts", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_service")),
	}, nil
}

// ListPosts implements PostService.ListPosts
func (s *postServiceImpl) ListPosts(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Post], error) {
	return s.list(ctx, "list_posts", "", req)
}

// ListPostsByTag implements PostService.ListPostsByTag
func (s *postServiceImpl) ListPostsByTag(
	ctx context.Context,
	tag string,
	req domain.PageRequest,
) (domain.Page[domain.Post], error) {
	if strings.TrimSpace(tag) == "" {
		return domain.Page[domain.Post]{}, domain.NewValidationError("tag", "is required", domain.ErrValidation)
	}
	return s.list(ctx, "list_posts_by_tag", tag, req)
}

func (s *postServiceImpl) list(
	ctx context.Context,
	operation, tag string,
	req domain.PageRequest,
) (domain.Page[domain.Post], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		log.Debug("invalid page request",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return domain.Page[domain.Post]{}, err
	}

	sort := query.ResolveSort(req.OrderBy, req.OrderDirection)
	filter := query.PostFilter{Tag: tag, Search: req.Search}

	page, err := s.posts.List(ctx, filter, sort, req.Limit, req.Offset)
	if err != nil {
		return domain.Page[domain.Post]{}, NewServiceError(operation, "failed to list posts", err)
	}
	return page, nil
}

// RandomPosts implements PostService.RandomPosts
func (s *postServiceImpl) RandomPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit < 1 || limit > domain.MaxLimit {
		return nil, domain.NewValidationError("limit", "must be between 1 and 100", domain.ErrOutOfRange)
	}

	posts, err := s.posts.Random(ctx, limit)
	if err != nil {
		return nil, NewServiceError("random_posts", "failed to sample posts", err)
	}
	return posts, nil
}

// GetPost implements PostService.GetPost
func (s *postServiceImpl) GetPost(ctx context.Context, username, slug string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if username == "" {
		return nil, domain.NewValidationError("username", "is required", domain.ErrValidation)
	}
	if slug == "" {
		return nil, domain.NewValidationError("slug", "is required", domain.ErrValidation)
	}

	post, err := s.posts.FindByAuthorAndSlug(ctx, username, slug)
	if err != nil {
		return nil, NewServiceError("get_post", "failed to retrieve post", err)
	}
	if post == nil {
		log.Debug("post not found",
			slog.String("username", username),
			slog.String("slug", slug))
		return nil, ErrPostNotFound
	}
	return post, nil
}
