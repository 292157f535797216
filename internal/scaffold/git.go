package scaffold

import (
	"context"
	"fmt"
)

// stepGit initializes a git repository in the project root.
func stepGit(ctx context.Context, sc *Context) error {
	if sc.SkipGit {
		sc.Console.Warn("git skipped")
		return nil
	}

	if pathExists(sc.Path(".git")) {
		sc.Console.Warn("git already initialized")
		return nil
	}

	if _, err := sc.Runner.Run(ctx, sc.Dir, sc.Config.GitBin, "init"); err != nil {
		return fmt.Errorf("failed to initialize git repository: %w", err)
	}

	sc.Console.Success("initialized git repository")
	return nil
}
