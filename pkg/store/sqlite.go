package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteFile = "listplan.db"

const createSlots = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
)`

// SQLite keeps slots as rows of a single table.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if _, err := db.Exec(createSlots); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create slots table: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Read(slot string) ([]byte, error) {
	var val []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slot).Scan(&val)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", slot, err)
	}
	return val, nil
}

func (s *SQLite) Write(slot string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		slot, data)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", slot, err)
	}
	return nil
}

// ownsPath reports whether path is the database or one of its journals.
func (s *SQLite) ownsPath(path string) bool {
	return strings.HasPrefix(filepath.Base(path), filepath.Base(s.path))
}
