// Package config loads the optional per-user configuration for the
// generators.
//
// Two files are supported. An options file (.apiseed.yaml by default)
// sets defaults that command-line flags can override: the base Python
// interpreter, the use-case module names, and whether to skip the
// environment steps. A separate template-overrides file, written in
// JSONC so it can carry comments, maps relative output paths to
// replacement content that is overlaid on the registry before
// materialization.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the options file looked up in the working
// directory when --config is not given.
const DefaultFileName = ".apiseed.yaml"

// Options holds the configurable generator defaults. The zero value is
// valid and means "use built-in defaults".
type Options struct {
	// Python is the base interpreter used to create the virtualenv.
	Python string `yaml:"python"`

	// UseCases lists the use-case module names to generate.
	UseCases []string `yaml:"useCases"`

	// SkipEnv stops the run after materialization and git init.
	SkipEnv bool `yaml:"skipEnv"`
}

// Load reads and parses an options file. Unknown keys are rejected so a
// typo in the file surfaces immediately instead of silently falling
// back to defaults.
func Load(filePath string) (*Options, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var opts Options
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(filePath), err)
	}
	return &opts, nil
}

// LoadDefault loads DefaultFileName from the given directory if it
// exists. A missing file is not an error; it returns zero Options.
func LoadDefault(dir string) (*Options, error) {
	filePath := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return &Options{}, nil
		}
		return nil, err
	}
	return Load(filePath)
}

// LoadOverrides reads a JSONC template-overrides file: an object whose
// keys are slash-separated paths relative to the project root and whose
// values are full replacement file contents. JSONC comments and
// trailing commas are stripped before parsing, matching the
// devcontainer.json convention users already know.
func LoadOverrides(filePath string) (map[string]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading overrides file: %w", err)
	}

	var overrides map[string]string
	if err := json.Unmarshal(jsonc.ToJSON(data), &overrides); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(filePath), err)
	}

	for p := range overrides {
		if err := validateOverridePath(p); err != nil {
			return nil, err
		}
	}
	return overrides, nil
}

// validateOverridePath rejects override keys that would escape the
// project directory.
func validateOverridePath(p string) error {
	if p == "" {
		return fmt.Errorf("override path must not be empty")
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return fmt.Errorf("override path %q must be a relative slash-separated path", p)
	}
	clean := path.Clean(p)
	if clean != p || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("override path %q must stay inside the project directory", p)
	}
	return nil
}
