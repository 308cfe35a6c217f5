package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current cache schema version.
const SchemaVersion = 1

// CreateSchema creates the cache schema if it doesn't exist.
func CreateSchema(db *sql.DB) error {
	if err := createSchemaVersionTable(db); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}
	if err := createCompiledFilesTable(db); err != nil {
		return fmt.Errorf("creating compiled_files table: %w", err)
	}
	return nil
}

func createSchemaVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Insert version if table is empty
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion)
	}
	return err
}

func createCompiledFilesTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS compiled_files (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			object TEXT NOT NULL,
			animation TEXT NOT NULL
		)
	`)
	return err
}
