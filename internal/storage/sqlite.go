package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const (
	sqliteDriver = "sqlite"

	createBlobsTable = `CREATE TABLE IF NOT EXISTS blobs (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`
	selectBlob = `SELECT value FROM blobs WHERE key = ?`
	upsertBlob = `INSERT INTO blobs (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
)

// SQLiteStore keeps blobs in a single SQLite table
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path specified")
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	// A single connection serializes writes to the file.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createBlobsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %v", ErrUnavailable, path, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load returns the stored value, or ErrNotFound when no row exists
func (s *SQLiteStore) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(selectBlob, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrUnavailable, key, err)
	}
	return value, nil
}

// Save upserts the value for key
func (s *SQLiteStore) Save(key string, value []byte) error {
	if _, err := s.db.Exec(upsertBlob, key, value); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
