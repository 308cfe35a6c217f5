package store

import (
	"database/sql"
	"fmt"

	"github.com/dispa-lang/dispa/pkg/types"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite (pure-Go driver, no CGO).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed cache at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Exists reports whether this exact file content was already compiled.
func (s *SQLiteStore) Exists(id types.FileID) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM compiled_files WHERE id = ?", id.Hex()).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying file: %w", err)
	}
	return count > 0, nil
}

// Add stores a compile record (idempotent).
func (s *SQLiteStore) Add(rec Record) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO compiled_files (id, path, object, animation)
		VALUES (?, ?, ?, ?)
	`, rec.ID.Hex(), rec.Path, rec.Object, rec.Animation)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

// All returns every record, ordered by path.
func (s *SQLiteStore) All() ([]Record, error) {
	rows, err := s.db.Query("SELECT id, path, object, animation FROM compiled_files ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var hexID string
		var rec Record
		if err := rows.Scan(&hexID, &rec.Path, &rec.Object, &rec.Animation); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		id, err := types.ParseFileID(hexID)
		if err != nil {
			return nil, fmt.Errorf("parsing file ID: %w", err)
		}
		rec.ID = id
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
