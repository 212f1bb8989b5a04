package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/platform/logger"
	"github.com/quillpress/quill-api/internal/platform/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	log, buf := logger.NewTestLogger(t)

	var seenTraceID string
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	t.Run("generates_trace_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts", nil))

		require.True(t, shared.IsValidTraceID(seenTraceID))
		assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		for _, e := range entries {
			assert.Equal(t, seenTraceID, e["trace_id"])
		}
	})

	t.Run("reuses_valid_incoming_id", func(t *testing.T) {
		incoming := "00112233445566778899aabbccddeeff"
		req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
		req.Header.Set(shared.TraceIDHeader, incoming)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, incoming, seenTraceID)
		assert.Equal(t, incoming, rec.Header().Get(shared.TraceIDHeader))
	})

	t.Run("replaces_malformed_incoming_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
		req.Header.Set(shared.TraceIDHeader, "<script>")

		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "<script>", seenTraceID)
		assert.True(t, shared.IsValidTraceID(seenTraceID))
	})
}

func TestMetricsMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/v1/test-metrics/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/test-metrics/{id}", "418")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/test-metrics/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/test-metrics/2", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter), "requests are labelled by pattern, not path")
}
