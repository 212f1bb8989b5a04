package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// PreviewLength is the number of runes of a post body kept in list views.
	PreviewLength = 200

	// PreviewEllipsis is appended to a body that was cut to PreviewLength.
	PreviewEllipsis = "..."
)

// Post is the read model of a blog post, joined with its author summary
// and its tags.
type Post struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedBy uuid.UUID  `json:"created_by"`
	Slug      string     `json:"slug"`
	PhotoURL  string     `json:"photo_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	Published bool       `json:"published"`
	ViewCount int64      `json:"view_count"`
	LikeCount int64      `json:"like_count"`
	Author    User       `json:"author"`

	// Tags is ordered by name and is never nil once materialized.
	Tags []Tag `json:"tags"`
}

// Preview shortens the body to at most n runes, appending PreviewEllipsis
// when something was cut. It only changes the in-memory read model.
func (p *Post) Preview(n int) {
	p.Body = TruncateBody(p.Body, n)
}

// TruncateBody returns body unchanged when it has at most n runes, and the
// first n runes followed by PreviewEllipsis otherwise.
func TruncateBody(body string, n int) string {
	if n <= 0 || utf8.RuneCountInString(body) <= n {
		return body
	}

	count := 0
	for i := range body {
		if count == n {
			return body[:i] + PreviewEllipsis
		}
		count++
	}
	return body
}
