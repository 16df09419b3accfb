package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgxpool.Pool. The pool is created once at startup and injected
// into the repositories; it lives for the lifetime of the process.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new DB by parsing the given database URL and establishing a connection pool.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// EnsureSchema creates the teams key-value table if it does not exist yet.
// The whole persistent surface is this one table, so startup DDL replaces a
// migration tool.
func (db *DB) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS teams (
			id     TEXT PRIMARY KEY,
			record JSONB NOT NULL
		)`

	if _, err := db.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("creating teams table: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Pool returns the underlying pgxpool.Pool for repository use.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}
