package postgres

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var (
	postColumns = []string{
		"id", "title", "body", "created_by", "slug", "photo_url",
		"created_at", "updated_at", "published", "view_count", "like_count",
		"author_id", "username",
	}
	postTagColumns = []string{"post_id", "id", "name", "created_at"}
	tagColumns     = []string{"id", "name", "created_at"}

	fixtureTime = time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// sqlPattern turns a composed statement into an exact-match expectation.
func sqlPattern(sql string) string {
	return "^" + regexp.QuoteMeta(sql) + "$"
}

func fixtureAuthor(username string) domain.User {
	return domain.User{ID: uuid.New(), Username: username}
}

func fixturePost(title string, author domain.User) domain.Post {
	return domain.Post{
		ID:        uuid.New(),
		Title:     title,
		Body:      "Body of " + title,
		CreatedBy: author.ID,
		Slug:      strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
		Published: true,
		ViewCount: 7,
		LikeCount: 3,
		Author:    author,
	}
}

func fixtureTag(name string) domain.Tag {
	return domain.Tag{ID: uuid.New(), Name: name, CreatedAt: fixtureTime}
}

func postRows(posts ...domain.Post) *pgxmock.Rows {
	rows := pgxmock.NewRows(postColumns)
	for _, p := range posts {
		rows.AddRow(
			p.ID, p.Title, p.Body, p.CreatedBy, p.Slug, p.PhotoURL,
			p.CreatedAt, p.UpdatedAt, p.Published, p.ViewCount, p.LikeCount,
			p.Author.ID, p.Author.Username,
		)
	}
	return rows
}

type postTag struct {
	postID uuid.UUID
	tag    domain.Tag
}

func postTagRows(pairs ...postTag) *pgxmock.Rows {
	rows := pgxmock.NewRows(postTagColumns)
	for _, pt := range pairs {
		rows.AddRow(pt.postID, pt.tag.ID, pt.tag.Name, pt.tag.CreatedAt)
	}
	return rows
}

func tagRows(tags ...domain.Tag) *pgxmock.Rows {
	rows := pgxmock.NewRows(tagColumns)
	for _, tag := range tags {
		rows.AddRow(tag.ID, tag.Name, tag.CreatedAt)
	}
	return rows
}

func countRows(n int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"count"}).AddRow(n)
}

func postIDs(posts ...domain.Post) []uuid.UUID {
	ids := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func runes(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%c", 'a'+rune(i%26))
	}
	return b.String()
}
