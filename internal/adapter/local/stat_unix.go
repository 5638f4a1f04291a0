//go:build unix

package local

import (
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/Ning0612/ecorp/internal/domain"
)

// lstat reads the entry's own inode, not its symlink target
func lstat(path string) (domain.FileInfo, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return domain.FileInfo{}, mapError(err)
	}

	mode := uint32(st.Mode)
	sec, nsec := st.Mtim.Unix()

	return domain.FileInfo{
		Name:    filepath.Base(path),
		Type:    rawFileType(mode),
		Mode:    mode,
		UID:     st.Uid,
		GID:     st.Gid,
		Size:    st.Size,
		ModTime: time.Unix(sec, nsec),
	}, nil
}

func rawFileType(mode uint32) domain.FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return domain.FileTypeRegular
	case unix.S_IFDIR:
		return domain.FileTypeDirectory
	case unix.S_IFLNK:
		return domain.FileTypeSymlink
	default:
		return domain.FileTypeOther
	}
}
