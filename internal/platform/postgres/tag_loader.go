package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/query"
	"github.com/quillpress/quill-api/internal/store"
)

// attachTags loads the tags of every post in one round trip and assigns them
// in place. Posts without tags end up with an empty, non-nil slice. An empty
// page issues no query.
func attachTags(ctx context.Context, db store.DBTX, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		posts[i].Tags = []domain.Tag{}
	}

	stmt := query.TagsForPosts(ids)
	rows, err := db.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return fmt.Errorf("query tags for posts: %w", err)
	}
	defer rows.Close()

	byPost := make(map[uuid.UUID][]domain.Tag, len(posts))
	for rows.Next() {
		var postID uuid.UUID
		var t domain.Tag
		if err := rows.Scan(&postID, &t.ID, &t.Name, &t.CreatedAt); err != nil {
			return fmt.Errorf("scan post tag: %w: %w", store.ErrInvalidEntity, err)
		}
		byPost[postID] = append(byPost[postID], t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate post tags: %w", err)
	}

	for i := range posts {
		if tags, ok := byPost[posts[i].ID]; ok {
			posts[i].Tags = tags
		}
	}
	return nil
}

// attachPostTags loads the tags of a single post ordered by name.
func attachPostTags(ctx context.Context, db store.DBTX, post *domain.Post) error {
	stmt := query.TagsForPost(post.ID)
	rows, err := db.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return fmt.Errorf("query tags for post: %w", err)
	}
	tags, err := collectTags(rows)
	if err != nil {
		return fmt.Errorf("scan post tags: %w", err)
	}
	post.Tags = tags
	return nil
}
