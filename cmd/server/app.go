package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quillpress/quill-api/internal/config"
	"github.com/quillpress/quill-api/internal/platform/postgres"
	"github.com/quillpress/quill-api/internal/service"
	"github.com/quillpress/quill-api/internal/store"
)

// database is the pool capability the application needs: query access for
// the stores, Ping for health checks and Close on shutdown.
type database interface {
	store.DB
	Ping(ctx context.Context) error
	Close()
}

var _ database = (*pgxpool.Pool)(nil)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     database

	postStore store.PostStore
	tagStore  store.TagStore

	postService service.PostService
	tagService  service.TagService
}

// newApplication wires the stores and services on top of an established
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db database) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	snapshot := postgres.WithSnapshotReads(cfg.Database.SnapshotReads)
	app.postStore = postgres.NewPostgresPostStore(db, logger, snapshot)
	app.tagStore = postgres.NewPostgresTagStore(db, logger, snapshot)

	var err error
	app.postService, err = service.NewPostService(app.postStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	app.tagService, err = service.NewTagService(app.tagStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled or the listener fails.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the database pool.
func (app *application) cleanup() {
	if app.db != nil {
		app.db.Close()
	}
	app.logger.Info("application shutdown completed")
}
