// Package scaffold writes a rendered template registry to the real
// filesystem.
//
// Materialization is deliberately dumb: it creates ancestor directories
// as needed, writes each file with its registered mode, and overwrites
// pre-existing files without warning. There is no rollback: if a write
// fails midway, previously written files remain and the error is
// surfaced to the orchestrator, which treats it as fatal.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/apiseed/internal/template"
)

// Materialize writes every registry file under basePath. File paths in
// the registry are slash-separated and relative; they are joined onto
// basePath with the host separator. Errors carry the failing path and
// wrap the underlying filesystem error unmodified.
func Materialize(basePath string, files []template.File) error {
	for _, f := range files {
		target := filepath.Join(basePath, filepath.FromSlash(f.Path))

		// MkdirAll is idempotent: it succeeds if the directory chain
		// already exists.
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}

		if err := os.WriteFile(target, []byte(f.Content), f.Mode); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}

		// WriteFile's mode only applies to newly created files. A re-run
		// over an existing tree must still end with the registered mode,
		// so chmod explicitly. On platforms without a distinct execute
		// bit this is a no-op.
		if err := os.Chmod(target, f.Mode); err != nil {
			return fmt.Errorf("setting mode on %s: %w", f.Path, err)
		}
	}
	return nil
}
