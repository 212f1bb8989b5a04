package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/quillpress/quill-api/internal/api/shared"
	"github.com/quillpress/quill-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pingFailPool is a mock pool whose Ping always fails.
type pingFailPool struct {
	pgxmock.PgxPoolIface
	err error
}

func (p pingFailPool) Ping(context.Context) error {
	return p.err
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8000, LogLevel: "debug"},
		Database: config.DatabaseConfig{
			URL:           "postgres://quill@localhost:5432/quill",
			MaxConns:      4,
			MinConns:      1,
			SnapshotReads: true,
		},
	}
}

func newTestApp(t *testing.T, db database) *application {
	t.Helper()
	app, err := newApplication(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), db)
	require.NoError(t, err)
	return app
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter(t *testing.T) {
	t.Run("health_ok", func(t *testing.T) {
		mock := newMockPool(t)
		router := newTestApp(t, mock).setupRouter()

		paths := []string{"/", "/v1/health"}
		for range paths {
			mock.ExpectPing()
		}

		for _, path := range paths {
			rec := get(t, router, path)
			assert.Equal(t, http.StatusOK, rec.Code, path)
			assert.True(t, shared.IsValidTraceID(rec.Header().Get(shared.TraceIDHeader)))

			var env shared.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.True(t, env.Success)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("health_database_down", func(t *testing.T) {
		db := pingFailPool{PgxPoolIface: newMockPool(t), err: errors.New("connection refused")}
		router := newTestApp(t, db).setupRouter()

		rec := get(t, router, "/v1/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("validation_happens_before_the_database", func(t *testing.T) {
		mock := newMockPool(t)
		router := newTestApp(t, mock).setupRouter()

		rec := get(t, router, "/v1/posts?limit=0")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid limit")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("random_is_not_an_author", func(t *testing.T) {
		router := newTestApp(t, newMockPool(t)).setupRouter()

		rec := get(t, router, "/v1/posts/random?limit=abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid limit")
	})

	t.Run("incoming_trace_id_is_kept", func(t *testing.T) {
		router := newTestApp(t, newMockPool(t)).setupRouter()
		traceID := strings.Repeat("ab", 16)

		req := httptest.NewRequest(http.MethodGet, "/v1/tags?limit=500", nil)
		req.Header.Set(shared.TraceIDHeader, traceID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, traceID, rec.Header().Get(shared.TraceIDHeader))

		var env shared.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, traceID, env.TraceID)
	})

	t.Run("metrics_endpoint", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectPing()
		router := newTestApp(t, mock).setupRouter()
		get(t, router, "/v1/health")

		rec := get(t, router, "/metrics")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "quill_http_requests_total")
	})

	t.Run("unknown_route", func(t *testing.T) {
		router := newTestApp(t, newMockPool(t)).setupRouter()

		rec := get(t, router, "/v1/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
