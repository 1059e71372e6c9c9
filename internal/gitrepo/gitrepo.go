// Package gitrepo initializes version control for generated projects.
//
// It wraps the git CLI (via internal/execx) rather than a Go Git
// library: `git init` needs nothing beyond the binary every target
// machine already has, and shelling out keeps the generated repository
// byte-compatible with whatever git version the user runs.
package gitrepo

import (
	"context"
	"fmt"

	"github.com/mmr-tortoise/apiseed/internal/execx"
)

// Init creates a git repository in the given directory. Re-running
// against an already-initialized directory is harmless; git itself
// reports "Reinitialized existing Git repository" and exits zero.
func Init(ctx context.Context, dir string) error {
	if _, err := execx.Run(ctx, dir, "git", "init"); err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	return nil
}
