package domain

import "time"

// FileType represents the type of a filesystem entry
type FileType int

const (
	FileTypeRegular FileType = iota
	FileTypeDirectory
	FileTypeSymlink
	FileTypeOther // sockets, devices, fifos
)

// FileInfo represents metadata about a directory entry, taken without
// following symbolic links
type FileInfo struct {
	// Name is the base name of the entry
	Name string

	// Type indicates if this is a file, directory, or symlink
	Type FileType

	// Mode is the raw st_mode word: file type bits plus permission,
	// setuid, setgid and sticky bits
	Mode uint32

	// UID and GID are the numeric owner and group
	UID uint32
	GID uint32

	// Size in bytes
	Size int64

	// ModTime is the last modification time
	ModTime time.Time
}

// IsDir returns true if this is a directory
func (f FileInfo) IsDir() bool {
	return f.Type == FileTypeDirectory
}

// IsFile returns true if this is a regular file
func (f FileInfo) IsFile() bool {
	return f.Type == FileTypeRegular
}
