// Package store persists account and assumption snapshots in a namespaced SQLite key-value table.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DefaultNamespace is the key prefix every snapshot is stored under unless overridden
const DefaultNamespace = "retirement-calculator"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);
`

// DataDir returns the platform-appropriate data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "retirement")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "retirement")
}

// DefaultPath returns the full path to the default snapshot database.
func DefaultPath() string {
	return filepath.Join(DataDir(), "snapshots.db")
}

// queryer is the subset of *sql.DB and *sql.Tx the key-value helpers need
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

// Store is a SQLite-backed snapshot store.
type Store struct {
	db        *sql.DB
	namespace string
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}
	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, namespace: DefaultNamespace}, nil
}

// WithNamespace returns a view of the same database scoped to another namespace
func (s *Store) WithNamespace(namespace string) *Store {
	return &Store{db: s.db, namespace: namespace}
}

// Namespace returns the namespace this store reads and writes
func (s *Store) Namespace() string {
	return s.namespace
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// getJSON decodes the value stored under key into v. It reports false when the key is absent.
func (s *Store) getJSON(q queryer, key string, v any) (bool, error) {
	var raw string
	err := q.QueryRow("SELECT value FROM kv WHERE namespace = ? AND key = ?", s.namespace, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) putJSON(q queryer, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = q.Exec(`INSERT OR REPLACE INTO kv (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)`,
		s.namespace, key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys stored in the current namespace
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM kv WHERE namespace = ? ORDER BY key", s.namespace)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
