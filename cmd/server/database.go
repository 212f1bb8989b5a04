package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quillpress/quill-api/internal/config"
	"github.com/quillpress/quill-api/internal/redact"
	"golang.org/x/sync/errgroup"
)

const (
	connectTimeout  = 5 * time.Second
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
)

// poolConfig parses the database URL and applies the configured pool bounds.
func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %s", redact.Error(err))
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = maxConnLifetime
	pc.MaxConnIdleTime = maxConnIdleTime
	return pc, nil
}

// setupDatabase opens the connection pool, verifies it with a ping and warms
// it up to MinConns connections.
func setupDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %s", redact.Error(err))
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	if err := warmUp(ctx, pool, int(cfg.MinConns)); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("database connection established",
		slog.Int("min_conns", int(cfg.MinConns)),
		slog.Int("max_conns", int(cfg.MaxConns)))
	return pool, nil
}

// connAcquirer is the part of *pgxpool.Pool used by warmUp.
type connAcquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// warmUp holds n connections at once and pings each, so that the first
// requests do not pay for connection setup. All connections are released
// before it returns.
func warmUp(ctx context.Context, pool connAcquirer, n int) error {
	if n <= 0 {
		return nil
	}

	conns := make([]*pgxpool.Conn, n)
	defer func() {
		for _, c := range conns {
			if c != nil {
				c.Release()
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			c, err := pool.Acquire(gctx)
			if err != nil {
				return fmt.Errorf("acquire connection %d: %w", i, err)
			}
			conns[i] = c
			return c.Ping(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to warm up database pool: %s", redact.Error(err))
	}
	return nil
}
