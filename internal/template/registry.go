package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/mmr-tortoise/apiseed/internal/model"
)

// assetsFS embeds the raw template texts. Keeping them as real files
// rather than Go string literals preserves their formatting (the README
// templates contain backtick code fences) and keeps the Go source free
// of kilobytes of Python.
//
//go:embed assets
var assetsFS embed.FS

// defaultUseCases are the use-case module names generated when the
// caller does not configure their own.
var defaultUseCases = []string{"usecase1", "usecase2"}

// File is one registry entry: a relative output path and its rendered
// content. Entries are immutable once registered.
type File struct {
	// Path is the slash-separated path relative to the project root.
	Path string

	// Content is the full rendered file content.
	Content string

	// Mode is the permission mode the file is written with.
	// FileModeRegular for ordinary files, FileModeExecutable for
	// entry-point scripts.
	Mode fs.FileMode
}

// Permission modes for generated files. The executable mode matters only
// on platforms where the execute bit is a distinct filesystem attribute;
// elsewhere the materializer's chmod is a no-op.
const (
	FileModeRegular    fs.FileMode = 0o644
	FileModeExecutable fs.FileMode = 0o755
)

// Params carries the inputs a registry is rendered from. Rendering is a
// pure function of these values: the same Params always yield
// byte-identical content.
type Params struct {
	// ProjectName is interpolated verbatim into README/setup text.
	ProjectName string

	// UseCases lists the feature-slice module names to generate.
	// Empty means defaultUseCases.
	UseCases []string
}

// useCases returns the effective use-case list.
func (p Params) useCases() []string {
	if len(p.UseCases) == 0 {
		return defaultUseCases
	}
	return p.UseCases
}

// appInfo is the per-use-case template data: the module name plus the
// derived Django AppConfig class name (e.g. "order_items" →
// "OrderItemsConfig").
type appInfo struct {
	Name        string
	ConfigClass string
}

// appInfoFor derives the template data for one use-case module.
func appInfoFor(name string) appInfo {
	return appInfo{
		Name:        name,
		ConfigClass: exportedName(name) + "Config",
	}
}

// exportedName converts a lowercase Python identifier to CamelCase:
// underscore-separated words are capitalized and joined.
func exportedName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// Registry is a collection of rendered files keyed by their relative
// output path. Registration order is preserved so materialization and
// diagnostics are deterministic.
type Registry struct {
	files []File
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// add registers a file. Two entries must never target the same path
// within one registry: a duplicate indicates a template-table bug, so it
// is reported as an error rather than silently overwritten.
func (r *Registry) add(path, content string, mode fs.FileMode) error {
	if _, exists := r.index[path]; exists {
		return fmt.Errorf("duplicate template entry for path %q", path)
	}
	r.index[path] = len(r.files)
	r.files = append(r.files, File{Path: path, Content: content, Mode: mode})
	return nil
}

// Add registers a regular file.
func (r *Registry) Add(path, content string) error {
	return r.add(path, content, FileModeRegular)
}

// AddExecutable registers an entry-point script that must carry the
// owner-executable bit after materialization.
func (r *Registry) AddExecutable(path, content string) error {
	return r.add(path, content, FileModeExecutable)
}

// Apply overlays user-supplied template overrides onto the registry.
// A path that matches an existing entry replaces its content (keeping
// its mode); an unknown path is added as a new regular file. Added paths
// are applied in sorted order so the result is deterministic regardless
// of map iteration.
func (r *Registry) Apply(overrides map[string]string) {
	paths := make([]string, 0, len(overrides))
	for path := range overrides {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if i, exists := r.index[path]; exists {
			r.files[i].Content = overrides[path]
			continue
		}
		// Cannot fail: the path is known not to exist.
		_ = r.add(path, overrides[path], FileModeRegular)
	}
}

// Files returns the registered files in registration order. The slice is
// a copy; mutating it does not affect the registry.
func (r *Registry) Files() []File {
	out := make([]File, len(r.files))
	copy(out, r.files)
	return out
}

// Get returns the entry for the given relative path.
func (r *Registry) Get(path string) (File, bool) {
	i, ok := r.index[path]
	if !ok {
		return File{}, false
	}
	return r.files[i], true
}

// Len returns the number of registered files.
func (r *Registry) Len() int {
	return len(r.files)
}

// renderAsset loads an embedded asset and renders it with text/template.
// Static assets simply contain no template actions. Errors here indicate
// a broken embedded asset, which is a programming error, but they are
// still propagated so a bad build fails loudly instead of writing
// half-rendered projects.
func renderAsset(name string, data any) (string, error) {
	raw, err := assetsFS.ReadFile("assets/" + name)
	if err != nil {
		return "", fmt.Errorf("missing embedded template %q: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("invalid embedded template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template %q: %w", name, err)
	}
	return buf.String(), nil
}

// validateParams checks the use-case names before rendering. The project
// name itself is validated at the CLI boundary; the registry interpolates
// it verbatim.
func validateParams(p Params) error {
	seen := make(map[string]bool)
	for _, uc := range p.useCases() {
		if err := model.ValidateUseCaseName(uc); err != nil {
			return err
		}
		if seen[uc] {
			return fmt.Errorf("duplicate use case name %q", uc)
		}
		seen[uc] = true
	}
	return nil
}
