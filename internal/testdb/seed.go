//go:build integration

package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// PostSeed describes a post row to insert. Zero values get sensible
// defaults: a random UUID slug, published, and the current time.
type PostSeed struct {
	Title     string
	Body      string
	Slug      string
	PhotoURL  *string
	Published *bool
	Deleted   bool
	ViewCount int64
	LikeCount int64
	CreatedAt time.Time
}

// Seeder inserts fixtures through a pool.
type Seeder struct {
	t    *testing.T
	pool *pgxpool.Pool
}

// NewSeeder returns a Seeder that fails t on any insert error.
func NewSeeder(t *testing.T, pool *pgxpool.Pool) *Seeder {
	return &Seeder{t: t, pool: pool}
}

// User inserts a user.
func (s *Seeder) User(username string) domain.User {
	s.t.Helper()
	u := domain.User{ID: uuid.New(), Username: username}
	s.exec("INSERT INTO users (id, username) VALUES ($1, $2)", u.ID, u.Username)
	return u
}

// Post inserts a post written by author.
func (s *Seeder) Post(author domain.User, seed PostSeed) domain.Post {
	s.t.Helper()

	published := true
	if seed.Published != nil {
		published = *seed.Published
	}
	slug := seed.Slug
	if slug == "" {
		slug = uuid.NewString()
	}
	createdAt := seed.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	var deletedAt *time.Time
	if seed.Deleted {
		now := time.Now().UTC()
		deletedAt = &now
	}

	p := domain.Post{
		ID:        uuid.New(),
		Title:     seed.Title,
		Body:      seed.Body,
		CreatedBy: author.ID,
		Slug:      slug,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Published: published,
		ViewCount: seed.ViewCount,
		LikeCount: seed.LikeCount,
		Author:    author,
		Tags:      []domain.Tag{},
	}
	if seed.PhotoURL != nil {
		p.PhotoURL = *seed.PhotoURL
	}

	s.exec(`INSERT INTO posts
		(id, title, body, created_by, slug, photo_url, published, created_at, updated_at, deleted_at, view_count, like_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Title, p.Body, p.CreatedBy, p.Slug, seed.PhotoURL, p.Published,
		p.CreatedAt, p.UpdatedAt, deletedAt, p.ViewCount, p.LikeCount)
	return p
}

// Tag inserts a tag.
func (s *Seeder) Tag(name string) domain.Tag {
	s.t.Helper()
	tag := domain.Tag{ID: uuid.New(), Name: name, CreatedAt: time.Now().UTC().Truncate(time.Microsecond)}
	s.exec("INSERT INTO tags (id, name, created_at) VALUES ($1, $2, $3)", tag.ID, tag.Name, tag.CreatedAt)
	return tag
}

// Attach links tags to a post.
func (s *Seeder) Attach(post domain.Post, tags ...domain.Tag) {
	s.t.Helper()
	for _, tag := range tags {
		s.exec("INSERT INTO posts_to_tags (post_id, tag_id) VALUES ($1, $2)", post.ID, tag.ID)
	}
}

func (s *Seeder) exec(sql string, args ...any) {
	s.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	_, err := s.pool.Exec(ctx, sql, args...)
	require.NoError(s.t, err, "seed statement failed")
}
