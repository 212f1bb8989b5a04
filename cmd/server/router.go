package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quillpress/quill-api/internal/api"
	apiMiddleware "github.com/quillpress/quill-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics)

	postHandler := api.NewPostHandler(app.postService, app.logger)
	tagHandler := api.NewTagHandler(app.tagService, app.logger)
	healthHandler := api.NewHealthHandler(app.db, app.logger)

	r.Get("/", healthHandler.Check)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Get("/posts", postHandler.ListPosts)
		// Registered before the username route so "random" is never read
		// as an author.
		r.Get("/posts/random", postHandler.RandomPosts)
		r.Get("/posts/u/{username}/{slug}", postHandler.GetPost)

		r.Get("/tags", tagHandler.ListTags)
		r.Get("/tags/{tag}/posts", postHandler.ListPostsByTag)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
