// Package execx wraps external tool invocation behind a small interface
// so commands can be substituted with fakes in tests.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its captured stdout.
type Runner interface {
	// Run executes name with args in dir and returns stdout verbatim.
	// A non-zero exit or spawn failure is returned as an error that
	// includes the command line and anything the tool wrote to stderr.
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// OSRunner runs commands with os/exec.
type OSRunner struct{}

// NewRunner returns a Runner backed by the operating system.
func NewRunner() Runner {
	return OSRunner{}
}

func (OSRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return stdout.Bytes(), nil
}
