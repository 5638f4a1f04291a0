package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromString_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadFromString("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURI, cfg.BaseURI)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "pluma", cfg.Editor)
	assert.Equal(t, "mail.txt", cfg.EmailFile)
	assert.Equal(t, "fiveNine", cfg.ExerciseDir)
	assert.Equal(t, filepath.Join(home, ".sciper"), cfg.SciperFile)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromString_Overrides(t *testing.T) {
	yaml := `
base_uri: http://localhost:8080/hw01
timeout: 2s
editor: gedit
email_file: inbox.txt
exercise_dir: sixTen
sciper_file: /tmp/ecorp/.sciper
log:
  level: debug
  format: json
`
	cfg, err := LoadFromString(yaml)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/hw01", cfg.BaseURI)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "gedit", cfg.Editor)
	assert.Equal(t, "inbox.txt", cfg.EmailFile)
	assert.Equal(t, "sixTen", cfg.ExerciseDir)
	assert.Equal(t, "/tmp/ecorp/.sciper", cfg.SciperFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromString_EnvOverride(t *testing.T) {
	t.Setenv("ECORP_BASE_URI", "http://127.0.0.1:9999")
	t.Setenv("ECORP_TIMEOUT", "750ms")
	t.Setenv("ECORP_LOG_LEVEL", "error")

	cfg, err := LoadFromString("")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999", cfg.BaseURI)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadFromString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "base_uri: [unterminated"},
		{"bad scheme", "base_uri: ftp://example.com"},
		{"no host", "base_uri: http://"},
		{"zero timeout", "timeout: 0s"},
		{"empty email file", "email_file: \"\""},
		{"empty exercise dir", "exercise_dir: \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.yaml)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigInvalid), "got %v", err)
		})
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ecorp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: nano\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nano", cfg.Editor)
	assert.Equal(t, DefaultBaseURI, cfg.BaseURI)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound), "got %v", err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultExerciseDir, cfg.ExerciseDir)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ECORP_TEST_DIR", "/srv/lab")

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, ".sciper"), ExpandPath("~/.sciper"))
	assert.Equal(t, "/srv/lab/mail.txt", ExpandPath("$ECORP_TEST_DIR/mail.txt"))
	assert.Equal(t, "relative/path", ExpandPath("relative/./path"))
}
