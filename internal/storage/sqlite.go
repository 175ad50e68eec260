// Package storage provides the data persistence layer for the orghub
// application. Collections are persisted as one key-value row each: the key
// names the collection and the value is its JSON-encoded contents, so a
// whole-database backup is a shallow passthrough of the stored strings.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"orghub/internal/common"
)

// Storage keys, one per logical collection.
const (
	KeyMembers      = "@orghub_members"
	KeyEvents       = "@orghub_events"
	KeyGroups       = "@orghub_groups"
	KeyAttendance   = "@orghub_attendance"
	KeyTransactions = "@orghub_transactions"
	KeyLoans        = "@orghub_loans"
	KeySettings     = "@orghub_account_settings"
	KeyUsers        = "@orghub_users"
	KeySession      = "@orghub_auth_session"
)

// CollectionKeys lists every key included in a whole-database export.
var CollectionKeys = []string{
	KeyMembers,
	KeyEvents,
	KeyGroups,
	KeyAttendance,
	KeyTransactions,
	KeyLoans,
	KeySettings,
	KeyUsers,
	KeySession,
}

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// Store is the durable key-value store backing all collections.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if needed) the store at the given path.
func Open(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection: all collection writes are whole-value replaces and
	// must not interleave.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// readRaw returns the raw serialized value for a key. The second return is
// false when the key has never been written.
func (s *Store) readRaw(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM collections WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) writeRaw(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *Store) deleteRaw(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear key %s: %w", key, err)
	}
	return nil
}

// listCollection decodes the stored array for a key. A missing key is an
// empty collection; a value that no longer parses is surfaced as
// common.ErrCorruptState instead of being silently dropped.
func listCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	raw, ok, err := s.readRaw(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptState, key, err)
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.writeRaw(ctx, key, string(data))
}

// getSingleton decodes the stored object for a key into dst. The boolean is
// false when the key has never been written.
func getSingleton[T any](ctx context.Context, s *Store, key string, dst *T) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	raw, ok, err := s.readRaw(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", common.ErrCorruptState, key, err)
	}
	return true, nil
}

func saveSingleton[T any](ctx context.Context, s *Store, key string, value T) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.writeRaw(ctx, key, string(data))
}
