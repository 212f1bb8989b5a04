package store

import (
	"context"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/query"
)

// PostStore defines the read operations on published posts.
// Every method only ever returns posts that are published and not
// soft-deleted, each with its author summary and its tags ordered by name.
type PostStore interface {
	// List returns one page of posts matching filter, ordered by sort,
	// together with the total number of matching posts. An offset past the
	// end yields an empty page, not an error. Bodies are shortened to
	// domain.PreviewLength.
	//
	// filter.Tag restricts the listing to posts carrying a tag with exactly
	// that name; filter.Search matches title, body and author username.
	List(
		ctx context.Context,
		filter query.PostFilter,
		sort query.Sort,
		limit, offset int,
	) (domain.Page[domain.Post], error)

	// Random returns up to limit posts sampled in random order, with bodies
	// shortened to domain.PreviewLength.
	Random(ctx context.Context, limit int) ([]domain.Post, error)

	// FindByAuthorAndSlug returns the post written by username with the
	// given slug. The body is not shortened.
	// A missing post is reported as (nil, nil): absence is not an error.
	FindByAuthorAndSlug(ctx context.Context, username, slug string) (*domain.Post, error)
}
