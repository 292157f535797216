package scaffold

import (
	"context"
	"fmt"
	"os"
)

// stepDirectory ensures the project root exists. A brand-new or empty
// directory proceeds silently; a non-empty one requires confirmation.
func stepDirectory(_ context.Context, sc *Context) error {
	info, err := os.Stat(sc.Dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(sc.Dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", sc.Dir, err)
		}
		sc.Console.Success("created %s", sc.Dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", sc.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", sc.Dir)
	}

	entries, err := os.ReadDir(sc.Dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sc.Dir, err)
	}
	if len(entries) == 0 {
		return nil
	}

	confirmed, err := sc.Prompter.Confirm(fmt.Sprintf("%s is not empty. Initialize anyway?", sc.Dir), false)
	if err != nil {
		return err
	}
	if !confirmed {
		return ErrAborted
	}
	return nil
}
