package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile is a test helper that writes content under dir and returns
// the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// TestLoad verifies a fully populated options file.
func TestLoad(t *testing.T) {
	p := writeFile(t, t.TempDir(), ".apiseed.yaml", `python: python3.12
useCases:
  - orders
  - payments
skipEnv: true
`)

	opts, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "python3.12", opts.Python)
	assert.Equal(t, []string{"orders", "payments"}, opts.UseCases)
	assert.True(t, opts.SkipEnv)
}

// TestLoadRejectsUnknownKeys verifies that typos in the options file
// are reported rather than ignored.
func TestLoadRejectsUnknownKeys(t *testing.T) {
	p := writeFile(t, t.TempDir(), ".apiseed.yaml", "pyton: python3\n")

	_, err := Load(p)
	assert.Error(t, err)
}

// TestLoadDefaultMissingFile verifies that an absent options file
// yields zero options without error.
func TestLoadDefaultMissingFile(t *testing.T) {
	opts, err := LoadDefault(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Options{}, opts)
}

// TestLoadDefaultPresentFile verifies the default filename lookup.
func TestLoadDefaultPresentFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, DefaultFileName, "python: python3.11\n")

	opts, err := LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, "python3.11", opts.Python)
}

// TestLoadOverrides verifies JSONC parsing including comments and
// trailing commas.
func TestLoadOverrides(t *testing.T) {
	p := writeFile(t, t.TempDir(), "overrides.jsonc", `{
  // replace the generated env file
  ".env": "DEBUG=False\n",
  "docs/NOTES.md": "# notes\n",
}`)

	overrides, err := LoadOverrides(p)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG=False\n", overrides[".env"])
	assert.Equal(t, "# notes\n", overrides["docs/NOTES.md"])
}

// TestLoadOverridesRejectsEscapingPaths verifies that override keys
// cannot reach outside the project directory.
func TestLoadOverridesRejectsEscapingPaths(t *testing.T) {
	cases := []string{
		`{"../outside.txt": "x"}`,
		`{"/etc/passwd": "x"}`,
		`{"a/../../b": "x"}`,
		`{"": "x"}`,
	}
	for _, body := range cases {
		p := writeFile(t, t.TempDir(), "overrides.jsonc", body)
		_, err := LoadOverrides(p)
		assert.Error(t, err, "expected %s to be rejected", body)
	}
}

// TestLoadOverridesMissingFile verifies the read error is surfaced.
func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.jsonc"))
	assert.Error(t, err)
}
