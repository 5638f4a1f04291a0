package adapter

import (
	"context"
	"io"

	"github.com/Ning0612/ecorp/internal/domain"
)

// Adapter is the filesystem surface the command handlers work against.
// Implementations return *domain.Error values so callers can match with
// errors.Is on the domain sentinels.
type Adapter interface {
	// List returns the direct children of path, inspected without
	// following symbolic links. Order is unspecified.
	// Returns domain.ErrPathNotFound if path doesn't exist
	// Returns domain.ErrNotADirectory if path is not a directory
	List(ctx context.Context, path string) ([]domain.FileInfo, error)

	// Stat returns metadata for a single path, following symbolic links
	// Returns domain.ErrPathNotFound if path doesn't exist
	Stat(ctx context.Context, path string) (domain.FileInfo, error)

	// Write creates or overwrites a regular file
	// Returns domain.ErrFileConflict if path exists and is not a regular file
	Write(ctx context.Context, path string, r io.Reader) error

	// Close releases any resources held by the adapter
	Close() error
}
