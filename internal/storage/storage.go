// Package storage provides the key-value blob stores that back the
// favorites slot: Fyne preferences for the desktop app, SQLite for the CLI,
// and an in-memory store for tests.
package storage

import "errors"

var (
	// ErrNotFound is returned when the requested slot holds no value
	ErrNotFound = errors.New("storage: key not found")

	// ErrUnavailable is returned when the backing store cannot be accessed
	ErrUnavailable = errors.New("storage: unavailable")
)

// BlobStore persists opaque values under named slots.
type BlobStore interface {
	// Load returns the value stored under key, or ErrNotFound.
	Load(key string) ([]byte, error)

	// Save overwrites the value stored under key.
	Save(key string, value []byte) error
}
