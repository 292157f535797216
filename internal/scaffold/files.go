package scaffold

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteJSONOnce serializes doc with two-space indentation to rel under
// the project root, unless the destination already exists.
func WriteJSONOnce(sc *Context, rel string, doc any) error {
	dst := sc.Path(rel)
	if pathExists(dst) {
		sc.Console.Warn("%s already initialized", rel)
		return nil
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", rel, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}

	sc.Console.Success("generated %s", rel)
	return nil
}

// CopyOnce copies src (a file or directory tree) from the bundled
// templates to rel under the project root, unless rel already exists.
func CopyOnce(sc *Context, src, rel string) error {
	dst := sc.Path(rel)
	if pathExists(dst) {
		sc.Console.Warn("%s already initialized", rel)
		return nil
	}

	info, err := fs.Stat(sc.Templates, src)
	if err != nil {
		return fmt.Errorf("missing bundled template %s: %w", src, err)
	}

	if info.IsDir() {
		err = copyTree(sc.Templates, src, dst)
	} else {
		err = copyFile(sc.Templates, src, dst)
	}
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", rel, err)
	}

	sc.Console.Success("copied %s", rel)
	return nil
}

func copyTree(fsys fs.FS, src, dst string) error {
	return fs.WalkDir(fsys, src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(fsys, path, target)
	})
}

func copyFile(fsys fs.FS, src, dst string) error {
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
