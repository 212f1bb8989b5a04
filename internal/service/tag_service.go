package service

import (
	"context"
	"log/slog"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/store"
)

// TagService provides read access to tags.
type TagService interface {
	// ListTags returns one page of tags ordered by name.
	ListTags(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Tag], error)
}

// tagServiceImpl implements the TagService interface
type tagServiceImpl struct {
	tags   store.TagStore
	logger *slog.Logger
}

// NewTagService creates a new TagService backed by tags.
func NewTagService(tags store.TagStore, logger *slog.Logger) (TagService, error) {
	if tags == nil {
		return nil, domain.NewValidationError("tags", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &tagServiceImpl{
		tags:   tags,
		logger: logger.With(slog.String("component", "tag_service")),
	}, nil
}

// ListTags implements TagService.ListTags. Only Offset and Limit of req are
// used.
func (s *tagServiceImpl) ListTags(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Tag], error) {
	bounds := domain.PageRequest{Offset: req.Offset, Limit: req.Limit}
	if err := bounds.Validate(); err != nil {
		return domain.Page[domain.Tag]{}, err
	}

	page, err := s.tags.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return domain.Page[domain.Tag]{}, NewServiceError("list_tags", "failed to list tags", err)
	}
	return page, nil
}
