package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Ning0612/ecorp/internal/domain"
)

// Adapter implements the adapter.Adapter interface for local filesystem
type Adapter struct {
	root string
}

// New creates a new local filesystem adapter.
// Relative paths passed to its methods are resolved against root.
func New(root string) (*Adapter, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, mapError(err)
	}
	if !info.IsDir() {
		return nil, domain.NewError(domain.KindNotADirectory, "", fmt.Errorf("%s: not a directory", absRoot))
	}

	return &Adapter{root: absRoot}, nil
}

// resolvePath maps a path onto the filesystem; absolute paths pass through
func (a *Adapter) resolvePath(path string) string {
	if path == "" || path == "." {
		return a.root
	}
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(a.root, path)
}

// List returns the direct children of path without following symlinks
func (a *Adapter) List(ctx context.Context, path string) ([]domain.FileInfo, error) {
	fullPath := a.resolvePath(path)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, mapError(err)
	}
	if !info.IsDir() {
		return nil, domain.NewError(domain.KindNotADirectory, "", fmt.Errorf("%s: not a directory", fullPath))
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]domain.FileInfo, 0, len(entries))
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		fileInfo, err := lstat(filepath.Join(fullPath, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		result = append(result, fileInfo)
	}

	return result, nil
}

// Stat returns metadata for a single path
func (a *Adapter) Stat(ctx context.Context, path string) (domain.FileInfo, error) {
	info, err := os.Stat(a.resolvePath(path))
	if err != nil {
		return domain.FileInfo{}, mapError(err)
	}
	return fileInfoFromOS(info), nil
}

// Write creates or truncates a regular file. Symlinks to regular files are
// written through; any other existing non-file object is a conflict.
func (a *Adapter) Write(ctx context.Context, path string, r io.Reader) error {
	fullPath := a.resolvePath(path)

	if info, err := os.Stat(fullPath); err == nil && !info.Mode().IsRegular() {
		return domain.NewError(domain.KindFileConflict, "", fmt.Errorf("%s exists and is not a regular file", fullPath))
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return mapError(err)
	}

	_, copyErr := io.Copy(file, r)
	closeErr := file.Close()

	if copyErr != nil {
		return copyErr
	}
	return closeErr
}

// Close releases any resources (no-op for local adapter)
func (a *Adapter) Close() error {
	return nil
}

// Root returns the root path of this adapter
func (a *Adapter) Root() string {
	return a.root
}

// fileInfoFromOS converts os.FileInfo to domain.FileInfo.
// Ownership is left zero; see lstat for the full record.
func fileInfoFromOS(info os.FileInfo) domain.FileInfo {
	return domain.FileInfo{
		Name:    info.Name(),
		Type:    fileTypeOf(info.Mode()),
		Mode:    uint32(info.Mode().Perm()),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

func fileTypeOf(mode fs.FileMode) domain.FileType {
	switch {
	case mode.IsRegular():
		return domain.FileTypeRegular
	case mode.IsDir():
		return domain.FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return domain.FileTypeSymlink
	default:
		return domain.FileTypeOther
	}
}

// mapError converts OS errors to domain errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewError(domain.KindPathNotFound, "", err)
	}

	return err
}
