package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/platform/logger"
	"github.com/quillpress/quill-api/internal/redact"
)

// Meta is the pagination block present on every response.
type Meta struct {
	TotalItems int64 `json:"total_items"`
	Offset     int64 `json:"offset"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

// DefaultMeta is the metadata attached to responses that are not a page:
// single resources, samples, health and errors.
func DefaultMeta() Meta {
	return Meta{TotalItems: 0, Offset: 0, Limit: domain.DefaultPostLimit, TotalPages: 0}
}

// PageMeta derives the metadata of a page.
func PageMeta[T any](page domain.Page[T]) Meta {
	return Meta{
		TotalItems: page.Total,
		Offset:     page.Offset,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(),
	}
}

// Envelope is the uniform response body. Its shape is the same for every
// endpoint: success responses carry data, error responses carry error, and
// both carry meta.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
	Meta    Meta   `json:"meta"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithData writes a successful envelope around data.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any, meta Meta) {
	RespondWithJSON(w, r, status, Envelope{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// RespondWithPage writes a 200 envelope holding the page items and the
// derived pagination metadata.
func RespondWithPage[T any](w http.ResponseWriter, r *http.Request, page domain.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	RespondWithData(w, r, http.StatusOK, items, PageMeta(page))
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// Only userMessage reaches the client; the error is logged after redaction.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: Logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Envelope{
		Success: false,
		Error:   userMessage,
		TraceID: traceID,
		Meta:    DefaultMeta(),
	})
}
