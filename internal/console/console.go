// Package console renders the user-facing log output for the init pipeline.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Console writes leveled, colorized messages to a single destination.
type Console struct {
	out io.Writer
}

// New returns a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Default returns a Console writing to stdout.
func Default() *Console {
	return New(os.Stdout)
}

// Header prints a section heading.
func (c *Console) Header(format string, args ...any) {
	headerColor.Fprintf(c.out, format+"\n", args...)
}

// Info prints a plain informational line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Success prints a line for a generated artifact.
func (c *Console) Success(format string, args ...any) {
	successColor.Fprintf(c.out, "✔ "+format+"\n", args...)
}

// Warn prints a line for a skipped or already-satisfied step.
func (c *Console) Warn(format string, args ...any) {
	warnColor.Fprintf(c.out, "• "+format+"\n", args...)
}

// Error prints an error line.
func (c *Console) Error(format string, args ...any) {
	errorColor.Fprintf(c.out, "✖ "+format+"\n", args...)
}

// Blank prints an empty line.
func (c *Console) Blank() {
	fmt.Fprintln(c.out)
}
