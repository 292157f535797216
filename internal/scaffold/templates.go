package scaffold

import (
	"context"
)

// Bundled template sources and their destinations relative to the
// project root. The ignore file becomes a dotfile on copy.
var templateCopies = []struct {
	src string
	dst string
}{
	{"server.js", "server.js"},
	{"views", "views"},
	{"public", "public"},
	{"gitignore", ".gitignore"},
}

// stepTemplates copies the bundled server entry point, view templates,
// static assets and ignore file into the project.
func stepTemplates(_ context.Context, sc *Context) error {
	for _, tc := range templateCopies {
		if err := CopyOnce(sc, tc.src, tc.dst); err != nil {
			return err
		}
	}
	return nil
}
