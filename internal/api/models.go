package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/domain"
)

// PageQuery holds the listing parameters accepted by the post listings.
type PageQuery struct {
	Offset         int    `query:"offset"         validate:"gte=0,lte=10000"`
	Limit          int    `query:"limit"          validate:"gte=1,lte=100"`
	Search         string `query:"search"         validate:"max=200"`
	OrderBy        string `query:"orderBy"        validate:"max=64"`
	OrderDirection string `query:"orderDirection" validate:"max=64"`
}

// PageRequest converts the query into the domain request.
func (q PageQuery) PageRequest() domain.PageRequest {
	return domain.PageRequest{
		Offset:         q.Offset,
		Limit:          q.Limit,
		Search:         q.Search,
		OrderBy:        q.OrderBy,
		OrderDirection: q.OrderDirection,
	}
}

// TagQuery holds the parameters of the tag listing.
type TagQuery struct {
	Offset int `query:"offset" validate:"gte=0,lte=10000"`
	Limit  int `query:"limit"  validate:"gte=1,lte=100"`
}

// RandomQuery holds the parameters of the random sample.
type RandomQuery struct {
	Limit int `query:"limit" validate:"gte=1,lte=100"`
}

// parsePageQuery reads and validates the listing parameters of r.
func parsePageQuery(r *http.Request, defaultLimit int) (PageQuery, error) {
	offset, err := shared.QueryInt(r, "offset", 0)
	if err != nil {
		return PageQuery{}, err
	}
	limit, err := shared.QueryInt(r, "limit", defaultLimit)
	if err != nil {
		return PageQuery{}, err
	}

	values := r.URL.Query()
	q := PageQuery{
		Offset:         offset,
		Limit:          limit,
		Search:         values.Get("search"),
		OrderBy:        values.Get("orderBy"),
		OrderDirection: values.Get("orderDirection"),
	}
	if err := shared.ValidateRequest(q); err != nil {
		return PageQuery{}, err
	}
	return q, nil
}

func parseTagQuery(r *http.Request) (TagQuery, error) {
	offset, err := shared.QueryInt(r, "offset", 0)
	if err != nil {
		return TagQuery{}, err
	}
	limit, err := shared.QueryInt(r, "limit", domain.DefaultTagLimit)
	if err != nil {
		return TagQuery{}, err
	}

	q := TagQuery{Offset: offset, Limit: limit}
	if err := shared.ValidateRequest(q); err != nil {
		return TagQuery{}, err
	}
	return q, nil
}

func parseRandomQuery(r *http.Request) (RandomQuery, error) {
	limit, err := shared.QueryInt(r, "limit", domain.DefaultRandomLimit)
	if err != nil {
		return RandomQuery{}, err
	}

	q := RandomQuery{Limit: limit}
	if err := shared.ValidateRequest(q); err != nil {
		return RandomQuery{}, err
	}
	return q, nil
}

// AuthorResponse is the author summary embedded in a post.
type AuthorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// TagResponse defines the response structure for a tag.
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResponse defines the response structure for a post. In listings Body
// holds the preview.
type PostResponse struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Slug      string         `json:"slug"`
	PhotoURL  string         `json:"photo_url"`
	CreatedBy uuid.UUID      `json:"created_by"`
	Published bool           `json:"published"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ViewCount int64          `json:"view_count"`
	LikeCount int64          `json:"like_count"`
	Author    AuthorResponse `json:"author"`
	Tags      []TagResponse  `json:"tags"`
}

// HealthResponse is the payload of the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}

// tagToResponse converts a domain.Tag to a TagResponse
func tagToResponse(t domain.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}

// tagsToResponse converts tags, never returning nil.
func tagsToResponse(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = tagToResponse(t)
	}
	return out
}

// postToResponse converts a domain.Post to a PostResponse
func postToResponse(p domain.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Slug:      p.Slug,
		PhotoURL:  p.PhotoURL,
		CreatedBy: p.CreatedBy,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		ViewCount: p.ViewCount,
		LikeCount: p.LikeCount,
		Author:    AuthorResponse{ID: p.Author.ID, Username: p.Author.Username},
		Tags:      tagsToResponse(p.Tags),
	}
}

func postsToResponse(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = postToResponse(p)
	}
	return out
}

// mapPage converts the items of a page, keeping its counts.
func mapPage[T, R any](page domain.Page[T], convert func([]T) []R) domain.Page[R] {
	return domain.Page[R]{
		Items:  convert(page.Items),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
