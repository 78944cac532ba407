package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database is the durable payload cache: data-source responses stored in
// Postgres so a restart (or a cold Redis) can still serve recent payloads.
type Database struct {
	conn *sql.DB
	dsn  string
}

// NewDatabase creates a new database connection
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		conn: db,
		dsn:  dsn,
	}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// RunMigrations creates the payload cache schema if it does not exist yet.
func (db *Database) RunMigrations() error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS api_cache (
			cache_key  TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_api_cache_expires_at ON api_cache (expires_at)`,
	}

	for _, statement := range statements {
		if _, err := db.conn.Exec(statement); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	log.Println("✓ All migrations completed successfully")
	return nil
}

// GetPayload returns the unexpired payload stored under a request key, or
// (nil, nil) when there is none.
func (db *Database) GetPayload(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT payload FROM api_cache WHERE cache_key = $1 AND expires_at > NOW()`

	var payload string
	err := db.conn.QueryRowContext(ctx, query, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching cached payload %s: %w", key, err)
	}
	return []byte(payload), nil
}

// SetPayload upserts a payload under a request key with a TTL.
func (db *Database) SetPayload(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	query := `
		INSERT INTO api_cache (cache_key, payload, expires_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (cache_key) DO UPDATE
		SET payload = EXCLUDED.payload,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = NOW()
	`

	expiresAt := time.Now().Add(ttl)
	if _, err := db.conn.ExecContext(ctx, query, key, string(payload), expiresAt); err != nil {
		return fmt.Errorf("storing cached payload %s: %w", key, err)
	}
	return nil
}

// PurgeExpired deletes cache rows past their expiry and returns how many
// were removed.
func (db *Database) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM api_cache WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("purging expired cache rows: %w", err)
	}
	return result.RowsAffected()
}

// HealthCheck performs a health check on the database
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}
