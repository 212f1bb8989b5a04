// Package main implements the entry point for the Quill API server, which
// serves the read side of a blog: post listings, search, tag views and
// single posts.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/quillpress/quill-api/internal/config"
	"github.com/quillpress/quill-api/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("quill-api: %v", err)
	}
}

// run loads configuration, connects to the database and serves HTTP until
// ctx is canceled.
func run(ctx context.Context) error {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
		slog.Int("min_conns", int(cfg.Database.MinConns)),
		slog.Bool("snapshot_reads", cfg.Database.SnapshotReads))

	pool, err := setupDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l, pool)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.Run(ctx)
}
