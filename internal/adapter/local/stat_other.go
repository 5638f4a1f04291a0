//go:build !unix

package local

import (
	"errors"
	"fmt"

	"github.com/Ning0612/ecorp/internal/domain"
)

// lstat is unavailable without POSIX ownership metadata
func lstat(path string) (domain.FileInfo, error) {
	return domain.FileInfo{}, fmt.Errorf("owner and group of %s: %w", path, errors.ErrUnsupported)
}
