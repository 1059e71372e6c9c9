package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Framework identifies which project flavor a generator run produces.
// Each framework has its own template registry, dependency manifest
// style, and bootstrap command.
type Framework string

const (
	// FrameworkDjango scaffolds a Django REST Framework project. Its
	// bootstrap step runs the generated manage.py schema migration.
	FrameworkDjango Framework = "django"

	// FrameworkFastAPI scaffolds a FastAPI project. Its bootstrap step is
	// an editable install (`pip install -e .`) against the generated
	// setup.py, which also pulls in the declared dependencies.
	FrameworkFastAPI Framework = "fastapi"
)

// String returns the string representation of Framework.
// This method satisfies the fmt.Stringer interface.
func (f Framework) String() string {
	return string(f)
}

// IsValid checks whether the Framework value is one of the predefined
// valid frameworks.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkDjango, FrameworkFastAPI:
		return true
	default:
		return false
	}
}

// ParseFramework converts a string to a Framework.
// Returns an error if the string does not match any valid framework.
func ParseFramework(s string) (Framework, error) {
	fw := Framework(strings.ToLower(s))
	if !fw.IsValid() {
		return "", fmt.Errorf("invalid framework: %q (valid: django, fastapi)", s)
	}
	return fw, nil
}

// ProjectSpec describes one generator run: which framework to scaffold,
// the project name given on the command line, and the absolute directory
// the project tree is created in. It is assembled by the CLI layer and
// owned by the orchestration pipeline for the duration of the run.
type ProjectSpec struct {
	// Name is the project directory name. Must pass ValidateProjectName.
	Name string `json:"name"`

	// BaseDir is the absolute path to the project directory
	// (<cwd>/<Name> resolved at startup).
	BaseDir string `json:"baseDir"`

	// Framework selects the template registry and bootstrap command.
	Framework Framework `json:"framework"`
}

// projectNameRegex validates project names: alphanumeric plus hyphen and
// underscore, starting with an alphanumeric character. This keeps the name
// safe to use as a directory name, a Python package prefix, and a README
// title without escaping.
var projectNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateProjectName checks if the given name is a valid project name.
// The template registry itself interpolates any name verbatim; this check
// runs once at the CLI boundary so that later filesystem and shell steps
// never see a hostile path component.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must contain only alphanumeric characters, hyphens and underscores, and start with an alphanumeric character", name)
	}
	return nil
}

// useCaseRegex validates use-case module names. These become Python
// package names in the generated project, so they must be importable
// identifiers: lowercase letter first, then lowercase letters, digits,
// or underscores.
var useCaseRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateUseCaseName checks if the given name can be used as a
// generated Python package name.
func ValidateUseCaseName(name string) error {
	if name == "" {
		return fmt.Errorf("use case name must not be empty")
	}
	if !useCaseRegex.MatchString(name) {
		return fmt.Errorf("invalid use case name %q: must be a lowercase Python identifier", name)
	}
	return nil
}

// ExitCode defines the CLI exit codes. The contract is deliberately
// narrow: 0 for full success, 1 for every failure category (usage error,
// external command failure, filesystem error, provisioning error). Every
// failure is terminal for the run; there is no partial-success code.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates the run failed. All error categories
	// share this code; diagnostics distinguish them.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
