package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with the given content
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	return CreateTestFileWithMode(t, dir, name, content, 0644)
}

// CreateTestFileWithMode creates a test file and forces its permission
// bits, bypassing the process umask
func CreateTestFileWithMode(t *testing.T, dir, name string, content []byte, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, mode); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("failed to chmod test file: %v", err)
	}

	return path
}

// FakeHome points $HOME at a fresh temporary directory for the test
func FakeHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

// Workspace creates a temporary working directory, switches into it for
// the duration of the test, and returns its path
func Workspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
	return dir
}
