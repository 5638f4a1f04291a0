// Package fingerprint renders a directory's ownership and permission
// metadata as the deterministic listing submitted for validation.
package fingerprint

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Ning0612/ecorp/internal/adapter"
	"github.com/Ning0612/ecorp/internal/domain"
	"github.com/Ning0612/ecorp/internal/logger"
)

// Builder produces fingerprints over an adapter
type Builder struct {
	fs       adapter.Adapter
	resolver Resolver
}

// NewBuilder creates a Builder. A nil resolver uses the system account database.
func NewBuilder(fs adapter.Adapter, resolver Resolver) *Builder {
	if resolver == nil {
		resolver = NewSystemResolver()
	}
	return &Builder{fs: fs, resolver: resolver}
}

// Records returns one record per direct child of dir, in listing order
func (b *Builder) Records(ctx context.Context, dir string) ([]domain.EntryRecord, error) {
	info, err := b.fs.Stat(ctx, dir)
	if err != nil {
		if errors.Is(err, domain.ErrPathNotFound) {
			return nil, domain.NewError(domain.KindPathNotFound, fmt.Sprintf("%s directory not found!", dir), err)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, domain.NewError(domain.KindNotADirectory, fmt.Sprintf("%s is not a directory!", dir), nil)
	}

	entries, err := b.fs.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	records := make([]domain.EntryRecord, 0, len(entries))
	for _, e := range entries {
		owner, err := b.resolver.UserName(e.UID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		group, err := b.resolver.GroupName(e.GID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}

		records = append(records, domain.EntryRecord{
			Mode:  FormatMode(e.Mode),
			Owner: owner,
			Group: group,
			Name:  e.Name,
		})
	}

	return records, nil
}

// Build returns the fingerprint document: every record rendered as a line,
// sorted by the whole line (not by name), joined with "\n"
func (b *Builder) Build(ctx context.Context, dir string) (string, error) {
	records, err := b.Records(ctx, dir)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	sort.Strings(lines)

	logger.Get().Debug("fingerprint built", "dir", dir, "entries", len(lines))

	return strings.Join(lines, "\n"), nil
}
