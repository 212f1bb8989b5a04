package store

import (
	"context"

	"github.com/quillpress/quill-api/internal/domain"
)

// TagStore defines the read operations on tags.
type TagStore interface {
	// List returns one page of tags ordered by name and the total tag count.
	List(ctx context.Context, limit, offset int) (domain.Page[domain.Tag], error)
}
