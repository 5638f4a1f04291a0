// Package identity persists the student's registration number between
// get-email and share invocations.
package identity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Ning0612/ecorp/internal/domain"
	"github.com/Ning0612/ecorp/internal/logger"
)

// Store reads and writes the identifier file
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the identifier file location
func (s *Store) Path() string {
	return s.path
}

// Save writes id in decimal, replacing any previous content
func (s *Store) Save(id domain.Sciper) error {
	if err := os.WriteFile(s.path, []byte(id.String()), 0644); err != nil {
		return fmt.Errorf("failed to save identifier: %w", err)
	}
	logger.Get().Debug("identifier saved", "path", s.path, "sciper", id)
	return nil
}

// Load reads the identifier back. A missing file is reported as
// KindMissingState so the caller can ask the user to run get-email first.
func (s *Store) Load() (domain.Sciper, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, domain.NewError(domain.KindMissingState, "no identifier saved at "+s.path, err)
		}
		return 0, fmt.Errorf("failed to read identifier: %w", err)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, domain.NewError(domain.KindUnknown, fmt.Sprintf("corrupt identifier file %s", s.path), err)
	}

	return domain.Sciper(n), nil
}
