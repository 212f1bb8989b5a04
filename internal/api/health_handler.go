package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/store"
)

// healthTimeout bounds the database ping of a health check.
const healthTimeout = 2 * time.Second

// Pinger is implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		db:     db,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

// Check handles GET / and GET /v1/health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: ping failed: %w", store.ErrUnavailable, err))
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, HealthResponse{Status: "ok"}, shared.DefaultMeta())
}
