package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ning0612/ecorp/internal/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".sciper"))

	for _, id := range []domain.Sciper{0, 100000, 123456, 987654321} {
		require.NoError(t, store.Save(id))

		got, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestStore_SaveTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sciper")
	store := NewStore(path)

	require.NoError(t, store.Save(9876543))
	require.NoError(t, store.Save(123456))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "123456", string(data))
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".sciper"))

	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingState)
}

func TestStore_LoadToleratesTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sciper")
	require.NoError(t, os.WriteFile(path, []byte("234567\n"), 0644))

	got, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Sciper(234567), got)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sciper")
	require.NoError(t, os.WriteFile(path, []byte("not-a-number"), 0644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.Equal(t, domain.KindUnknown, domain.KindOf(err))
	assert.NotErrorIs(t, err, domain.ErrMissingState)
}

func TestStore_SaveIntoMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope", ".sciper"))

	assert.Error(t, store.Save(123456))
}
