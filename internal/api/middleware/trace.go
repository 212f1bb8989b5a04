package middleware

import (
	"log/slog"
	"net/http"

	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that gives every request a trace ID.
// A well-formed X-Trace-ID header from the client is reused, otherwise a new
// ID is generated. The ID is echoed in the response header, and a logger
// carrying it is stored in the request context for handlers and stores.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming := r.Header.Get(shared.TraceIDHeader); shared.IsValidTraceID(incoming) {
				ctx = shared.WithTraceID(ctx, incoming)
			} else {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
