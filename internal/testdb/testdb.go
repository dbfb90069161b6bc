package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"

	"github.com/quizbuster/quizbuster-api/internal/platform/postgres"
)

// OpTimeout bounds every test database operation.
const OpTimeout = 5 * time.Second

// createUserTableSQL matches the migrated production schema; keeping the
// per-test reset idempotent means a fresh database needs no separate
// bootstrap step before the first test.
const createUserTableSQL = `CREATE TABLE IF NOT EXISTS "User" (
	username VARCHAR(100) PRIMARY KEY,
	password VARCHAR(255) NOT NULL,
	score INTEGER
)`

// truncateUserTableSQL clears all rows, resets any identity sequences and
// cascades to rows referencing the truncated ones.
const truncateUserTableSQL = `TRUNCATE TABLE "User" RESTART IDENTITY CASCADE`

// Connect opens a connection pool to the test database and verifies it
// with a ping. database/sql connections auto-commit outside explicit
// transactions, which CREATE DATABASE and TRUNCATE require.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	return open(ctx, cfg.URL())
}

// EnsureDatabaseExists makes sure the configured test database exists,
// creating it if absent. It runs once per test session, before any test.
// The existence check and creation go through the server's maintenance
// database; creating a database from a connection to itself is not
// possible.
func EnsureDatabaseExists(ctx context.Context, cfg Config) error {
	admin, err := open(ctx, cfg.MaintenanceURL())
	if err != nil {
		return fmt.Errorf("failed to connect to maintenance database: %w", err)
	}
	defer func() { _ = admin.Close() }()

	var exists bool
	err = admin.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.Name).
		Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query database catalog for %q: %w", cfg.Name, err)
	}

	if exists {
		slog.Info("test database already exists", "database", cfg.Name)
		return nil
	}

	slog.Info("test database not found, creating it", "database", cfg.Name)
	// CREATE DATABASE takes no bind parameters; sanitize the identifier.
	createStmt := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.Name}.Sanitize())
	if _, err := admin.ExecContext(ctx, createStmt); err != nil {
		return fmt.Errorf("failed to create test database %q: %w", cfg.Name, err)
	}

	slog.Info("test database created", "database", cfg.Name)
	return nil
}

// MustOpen is the session-level hook for TestMain. It ensures the test
// database exists and opens a connection to it. Any failure terminates
// the test run immediately with a non-zero exit; no test can produce a
// meaningful result without the database.
func MustOpen() *sql.DB {
	cfg := ConfigFromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), OpTimeout)
	defer cancel()

	if err := EnsureDatabaseExists(ctx, cfg); err != nil {
		slog.Error("test database setup failed, aborting test run", "error", err)
		os.Exit(1)
	}

	db, err := Connect(ctx, cfg)
	if err != nil {
		slog.Error("test database connection failed, aborting test run",
			"error", err,
			"database", cfg.Name)
		os.Exit(1)
	}

	slog.Info("connected to test database", "database", cfg.Name)
	return db
}

// ResetUserTable is the per-test hook: it makes sure the "User" table
// exists and is empty before the calling test runs. Failures fail only
// the calling test.
func ResetUserTable(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), OpTimeout)
	defer cancel()

	require.NoError(t, ResetUserTableContext(ctx, db), "failed to reset User table")
}

// ResetUserTableContext ensures the "User" table exists, then removes all
// rows and resets identity sequences, cascading to dependent rows. The
// connection is scoped to this call and released on every exit path.
func ResetUserTableContext(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, createUserTableSQL); err != nil {
		return fmt.Errorf("failed to ensure User table exists: %w", err)
	}
	if _, err := conn.ExecContext(ctx, truncateUserTableSQL); err != nil {
		return fmt.Errorf("failed to truncate User table: %w", err)
	}

	slog.Debug("User table reset")
	return nil
}

// MigrateSchema applies the full application schema to the test
// database. Integration tests that touch more than the "User" table call
// this once after MustOpen.
func MigrateSchema(t *testing.T, db *sql.DB) {
	t.Helper()
	require.NoError(t, postgres.MigrateUp(db), "failed to migrate test database schema")
}

func open(ctx context.Context, dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("database ping failed: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}
