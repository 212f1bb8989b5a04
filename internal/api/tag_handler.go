package api

import (
	"log/slog"
	"net/http"

	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/service"
)

// TagHandler handles tag-related HTTP requests.
type TagHandler struct {
	tags   service.TagService
	logger *slog.Logger
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tags service.TagService, logger *slog.Logger) *TagHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagHandler{
		tags:   tags,
		logger: logger.With(slog.String("component", "tag_handler")),
	}
}

// ListTags handles GET /v1/tags.
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	q, err := parseTagQuery(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.tags.ListTags(r.Context(), domain.PageRequest{Offset: q.Offset, Limit: q.Limit})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, mapPage(page, tagsToResponse))
}
