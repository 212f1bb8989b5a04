//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for goose
	"github.com/pressly/goose/v3"
	"github.com/quillpress/quill-api/internal/platform/postgres/migrations"
	"github.com/stretchr/testify/require"
)

// testGooseLogger implements a minimal logger interface for goose
type testGooseLogger struct {
	t *testing.T
}

// Printf implements the required logging method for goose's SetLogger
func (l *testGooseLogger) Printf(format string, v ...interface{}) {
	l.t.Log("Goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements the required logging method for goose's SetLogger
func (l *testGooseLogger) Fatalf(format string, v ...interface{}) {
	l.t.Fatal("Goose fatal error: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// ApplyMigrations brings the schema of db up to date with the embedded
// migrations.
func ApplyMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetTableName("schema_migrations")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Setup migrates the test database, empties the content tables and returns
// a pool connected to it. The test is skipped when no database is
// configured. The pool is closed when the test finishes.
func Setup(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skipf("%s not set, skipping integration test", DatabaseURLEnv)
	}
	dbURL := GetTestDatabaseURL()

	sqlDB, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open database for migrations")
	defer func() { _ = sqlDB.Close() }()

	goose.SetLogger(&testGooseLogger{t: t})
	require.NoError(t, ApplyMigrations(sqlDB))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err, "failed to create connection pool")
	t.Cleanup(pool.Close)

	Reset(t, pool)
	return pool
}

// Reset removes every row from the content tables.
func Reset(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE posts_to_tags, tags, posts, users CASCADE")
	require.NoError(t, err, "failed to truncate content tables")
}
