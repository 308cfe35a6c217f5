// Package store is the incremental build cache. It remembers the content
// hash of every successfully compiled source file so unchanged files can be
// skipped on the next build.
package store

import (
	"fmt"

	"github.com/dispa-lang/dispa/pkg/types"
)

// Record is one successfully compiled source file.
type Record struct {
	ID        types.FileID
	Path      string
	Object    string
	Animation string
}

// Store persists compile records between builds.
type Store interface {
	// Exists reports whether this exact file content was already compiled.
	Exists(id types.FileID) (bool, error)

	// Add stores a compile record (idempotent).
	Add(rec Record) error

	// All returns every record, ordered by path.
	All() ([]Record, error)

	// Close closes the underlying database.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory cache (useful for testing).
	Path string
}

// New creates a Store. ":memory:" selects the in-memory backend, anything
// else the SQLite file backend.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}
	return NewSQLite(cfg.Path)
}
