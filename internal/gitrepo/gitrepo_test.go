package gitrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit verifies that a repository is created in the target
// directory.
func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(context.Background(), dir))

	info, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestInitIsRepeatable verifies that re-initializing an existing
// repository does not fail.
func TestInitIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(context.Background(), dir))
	assert.NoError(t, Init(context.Background(), dir))
}

// TestInitMissingDirectory verifies that a nonexistent working
// directory surfaces the command failure.
func TestInitMissingDirectory(t *testing.T) {
	err := Init(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
