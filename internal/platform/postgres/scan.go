package postgres

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/store"
)

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost reads one row selected with query.PostColumns.
func scanPost(row rowScanner) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Body,
		&p.CreatedBy,
		&p.Slug,
		&p.PhotoURL,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Published,
		&p.ViewCount,
		&p.LikeCount,
		&p.Author.ID,
		&p.Author.Username,
	)
	return p, err
}

// collectPosts drains rows into posts, keeping the first occurrence of each
// post ID. rows is always closed.
func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	defer rows.Close()

	posts := make([]domain.Post, 0)
	seen := make(map[uuid.UUID]struct{})
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func scanTag(row rowScanner) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.Name, &t.CreatedAt)
	return t, err
}

// collectTags drains rows into tags. rows is always closed.
func collectTags(rows pgx.Rows) ([]domain.Tag, error) {
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
