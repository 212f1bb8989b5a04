package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/platform/logger"
	"github.com/quillpress/quill-api/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts  service.PostService
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_handler")),
	}
}

// ListPosts handles GET /v1/posts.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q, err := parsePageQuery(r, domain.DefaultPostLimit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.posts.ListPosts(r.Context(), q.PageRequest())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, mapPage(page, postsToResponse))
}

// ListPostsByTag handles GET /v1/tags/{tag}/posts.
func (h *PostHandler) ListPostsByTag(w http.ResponseWriter, r *http.Request) {
	tag, err := pathParam(r, "tag")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	q, err := parsePageQuery(r, domain.DefaultPostLimit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.posts.ListPostsByTag(r.Context(), tag, q.PageRequest())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, mapPage(page, postsToResponse))
}

// RandomPosts handles GET /v1/posts/random. The metadata reports the sample
// size; offset is always zero.
func (h *PostHandler) RandomPosts(w http.ResponseWriter, r *http.Request) {
	q, err := parseRandomQuery(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	posts, err := h.posts.RandomPosts(r.Context(), q.Limit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	count := int64(len(posts))
	shared.RespondWithData(w, r, http.StatusOK, postsToResponse(posts), shared.Meta{
		TotalItems: count,
		Offset:     0,
		Limit:      int64(q.Limit),
		TotalPages: domain.TotalPages(count, int64(q.Limit)),
	})
}

// GetPost handles GET /v1/posts/u/{username}/{slug}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	username, err := pathParam(r, "username")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	slug, err := pathParam(r, "slug")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	post, err := h.posts.GetPost(r.Context(), username, slug)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("post served",
		slog.String("post_id", post.ID.String()),
		slog.String("username", username))
	shared.RespondWithData(w, r, http.StatusOK, postToResponse(*post), shared.DefaultMeta())
}

// pathParam returns the decoded chi URL parameter name. chi matches against
// r.URL.RawPath when it is set, so only then is the segment still escaped.
func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if value != "" && r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(value)
		if err != nil {
			return "", domain.NewValidationError(name, "has invalid format", domain.ErrInvalidFormat)
		}
		value = unescaped
	}
	if value == "" {
		return "", domain.NewValidationError(name, "is required", domain.ErrValidation)
	}
	return value, nil
}
