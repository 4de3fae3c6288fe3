// Package credstore persists the client's durable session state: the access
// credential, the refresh credential, and the cached user profile. It is the
// Go analogue of the browser's localStorage surface and the only component
// allowed to touch those keys.
package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// The three keys that make up the entire durable client-side state.
const (
	KeyAccessCredential  = "accessCredential"
	KeyRefreshCredential = "refreshCredential"
	KeyUser              = "user"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the credential database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("create credential db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open credential database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping credential database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the stored value for key. A missing key is reported through
// the second return value, never as an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get credential %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value as a whole.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set credential %s: %w", key, err)
	}
	return nil
}

// Clear removes key. Clearing an absent key is not an error.
func (s *Store) Clear(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("clear credential %s: %w", key, err)
	}
	slog.DebugContext(ctx, "Credential cleared", "store_key", key)
	return nil
}
