// Package enum discovers source files for the compiler.
package enum

import (
	"context"

	"github.com/dispa-lang/dispa/pkg/types"
)

// Enumerator discovers source files to compile from some root.
type Enumerator interface {
	// Enumerate yields source files. The callback receives file content,
	// its content hash, and the file's path.
	Enumerate(ctx context.Context, callback func(content []byte, id types.FileID, path string) error) error
}

// Config for enumeration.
type Config struct {
	// Root is the directory walked for source files.
	Root string

	// Extension selects source files. Defaults to ".dspa".
	Extension string

	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links.
	FollowSymlinks bool
}

// DefaultExtension is the source file extension compiled by default.
const DefaultExtension = ".dspa"
