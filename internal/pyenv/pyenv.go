// Package pyenv provisions the isolated Python runtime environment for
// a generated project.
//
// It creates a virtualenv under the project directory by shelling out to
// the base interpreter (`python -m venv venv`) and resolves the paths to
// the environment's activation script, interpreter, and pip binary. The
// per-operating-system path conventions (Scripts/ with .exe suffixes on
// Windows, bin/ without suffixes elsewhere) are isolated in a pure
// function so each convention can be unit tested on any host.
//
// Resolution does not verify that the binaries exist; the first command
// that invokes them surfaces any problem.
package pyenv

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/mmr-tortoise/apiseed/internal/execx"
)

// VenvDirName is the virtualenv directory created under the project
// root. The generated .gitignore excludes it.
const VenvDirName = "venv"

// Layout describes one operating system family's virtualenv path
// convention.
type Layout struct {
	// BinDir is the subdirectory holding the environment's binaries:
	// "Scripts" on Windows, "bin" on POSIX systems.
	BinDir string

	// ExeSuffix is appended to binary names: ".exe" on Windows,
	// empty elsewhere.
	ExeSuffix string

	// ActivateFile is the shell activation script name:
	// "activate.bat" on Windows, "activate" elsewhere.
	ActivateFile string
}

// LayoutFor returns the virtualenv layout for the given GOOS value.
// Everything that is not Windows follows the POSIX convention.
func LayoutFor(goos string) Layout {
	if goos == "windows" {
		return Layout{BinDir: "Scripts", ExeSuffix: ".exe", ActivateFile: "activate.bat"}
	}
	return Layout{BinDir: "bin", ExeSuffix: "", ActivateFile: "activate"}
}

// Env holds the resolved paths of a provisioned environment. It is not
// persisted beyond the run; the paths point at files the venv creation
// left on disk.
type Env struct {
	// Root is the virtualenv directory (<project>/venv).
	Root string `json:"root"`

	// Activate is the shell activation script path.
	Activate string `json:"activate"`

	// Python is the environment's interpreter path.
	Python string `json:"python"`

	// Pip is the environment's package installer path.
	Pip string `json:"pip"`
}

// Resolve computes the binary paths for a virtualenv rooted at venvDir
// under the given layout. Pure: no filesystem access.
func Resolve(venvDir string, l Layout) Env {
	bin := filepath.Join(venvDir, l.BinDir)
	return Env{
		Root:     venvDir,
		Activate: filepath.Join(bin, l.ActivateFile),
		Python:   filepath.Join(bin, "python"+l.ExeSuffix),
		Pip:      filepath.Join(bin, "pip"+l.ExeSuffix),
	}
}

// DefaultInterpreter is the base interpreter used to create the
// virtualenv when the user configures none. Windows installs expose
// "python"; elsewhere "python3" is the unambiguous name.
func DefaultInterpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// Provision creates a virtualenv under basePath with pip bundled and
// returns the resolved environment paths for the current host OS.
// The underlying `python -m venv` failure (missing base interpreter,
// insufficient disk space) is propagated to the caller.
func Provision(ctx context.Context, basePath, interpreter string) (Env, error) {
	if interpreter == "" {
		interpreter = DefaultInterpreter()
	}

	venvDir := filepath.Join(basePath, VenvDirName)
	if _, err := execx.Run(ctx, basePath, interpreter, "-m", "venv", venvDir); err != nil {
		return Env{}, fmt.Errorf("creating virtual environment: %w", err)
	}

	return Resolve(venvDir, LayoutFor(runtime.GOOS)), nil
}
