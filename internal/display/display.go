// Package display opens the retrieved email for the user and draws the
// login banner.
package display

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/Ning0612/ecorp/internal/logger"
)

// Displayer shows a file to the user. Failures are non-fatal to callers.
type Displayer interface {
	Display(ctx context.Context, path string) error
}

// Func adapts a plain function to Displayer
type Func func(ctx context.Context, path string) error

// Display calls f
func (f Func) Display(ctx context.Context, path string) error {
	return f(ctx, path)
}

// Editor launches an external program on the file and does not wait for it
type Editor struct {
	Program string
}

// NewEditor creates an Editor for program
func NewEditor(program string) *Editor {
	return &Editor{Program: program}
}

// Display starts the editor detached
func (e *Editor) Display(ctx context.Context, path string) error {
	if e.Program == "" {
		return fmt.Errorf("no editor configured")
	}

	cmd := exec.Command(e.Program, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", e.Program, err)
	}

	logger.Get().Debug("editor started", "program", e.Program, "pid", cmd.Process.Pid)
	return cmd.Process.Release()
}
