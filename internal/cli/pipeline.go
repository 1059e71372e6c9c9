// pipeline.go implements the shared scaffolding pipeline behind the
// generator subcommands.
//
// Orchestration steps, in strict sequence, each fatal on failure:
//  1. Validate the project name and resolve the target directory
//  2. Load options (.apiseed.yaml) and merge with flags
//  3. Render the framework's template registry (+ optional overrides)
//  4. Materialize the registry to disk
//  5. Initialize a git repository
//  6. Provision the virtual environment
//  7. Upgrade pip, install dependencies
//  8. Run the framework bootstrap step
//  9. Print next-step instructions (text or JSON)
//
// There is no backward transition and no cleanup of partial output:
// a failed run leaves whatever was produced before the failure.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/apiseed/internal/config"
	"github.com/mmr-tortoise/apiseed/internal/execx"
	"github.com/mmr-tortoise/apiseed/internal/gitrepo"
	"github.com/mmr-tortoise/apiseed/internal/model"
	"github.com/mmr-tortoise/apiseed/internal/pyenv"
	"github.com/mmr-tortoise/apiseed/internal/scaffold"
	"github.com/mmr-tortoise/apiseed/internal/template"
)

// generateFlags holds the flag values shared by both generator
// commands. They are bound to cobra flags in registerGenerateFlags.
type generateFlags struct {
	python    string // --python: base interpreter for the virtualenv
	config    string // --config: options file path
	overrides string // --overrides: JSONC template-overrides file path
	force     bool   // --force: merge into an existing non-empty directory
	skipEnv   bool   // --skip-env: stop after materialization + git init
}

// registerGenerateFlags binds the shared generator flags onto a
// subcommand.
func registerGenerateFlags(cmd *cobra.Command, flags *generateFlags) {
	cmd.Flags().StringVar(&flags.python, "python", "", "Base Python interpreter for the virtual environment (default: python3, python on Windows)")
	cmd.Flags().StringVar(&flags.config, "config", "", "Options file path (default: ./"+config.DefaultFileName+" if present)")
	cmd.Flags().StringVar(&flags.overrides, "overrides", "", "JSONC file mapping relative paths to replacement template content")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Generate into an existing non-empty directory")
	cmd.Flags().BoolVar(&flags.skipEnv, "skip-env", false, "Skip virtual environment creation, dependency install, and bootstrap")
}

// exactProjectNameArg validates the positional arguments: exactly one,
// the project name. A wrong count yields a usage-style error that
// Execute reports with exit code 1, before any filesystem write.
func exactProjectNameArg(fw model.Framework) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("usage: apiseed %s <project-name>", fw))
		}
		return nil
	}
}

// runGenerate is the orchestration function shared by the django and
// fastapi commands.
func runGenerate(ctx context.Context, fw model.Framework, projectName string, flags *generateFlags) error {
	// Step 1: validate the name and resolve the target directory.
	if err := model.ValidateProjectName(projectName); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid project name", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}
	baseDir, err := filepath.Abs(filepath.Join(cwd, projectName))
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve project path", err)
	}
	spec := model.ProjectSpec{Name: projectName, BaseDir: baseDir, Framework: fw}
	VerboseLog("Project directory: %s", baseDir)

	// Step 2: options file, then flags on top.
	opts, err := loadOptions(cwd, flags.config)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load options", err)
	}
	python := flags.python
	if python == "" {
		python = opts.Python
	}
	skipEnv := flags.skipEnv || opts.SkipEnv

	// Refuse to scribble over an unrelated existing directory unless the
	// user explicitly asks for a merge.
	if err := checkTargetDir(baseDir, flags.force); err != nil {
		return err
	}

	// Step 3: render the registry.
	params := template.Params{ProjectName: projectName, UseCases: opts.UseCases}
	registry, err := renderRegistry(fw, params)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to render templates", err)
	}
	if flags.overrides != "" {
		userOverrides, loadErr := config.LoadOverrides(flags.overrides)
		if loadErr != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to load template overrides", loadErr)
		}
		registry.Apply(userOverrides)
		VerboseLog("Applied %d template override(s)", len(userOverrides))
	}

	// Step 4: write the tree.
	progress("Creating project structure...")
	if err := scaffold.Materialize(baseDir, registry.Files()); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Error creating project", err)
	}
	VerboseLog("Wrote %d file(s)", registry.Len())

	// Step 5: version control.
	progress("Initializing git repository...")
	if err := gitrepo.Init(ctx, baseDir); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Error creating project", err)
	}

	if skipEnv {
		VerboseLog("Skipping environment provisioning (--skip-env)")
		printGenerateResult(spec, nil, registry.Len())
		return nil
	}

	// Step 6: virtual environment. Must run after materialization: the
	// install and bootstrap steps read generated manifests from disk.
	progress("Setting up virtual environment...")
	env, err := pyenv.Provision(ctx, baseDir, python)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "Error creating project", err)
	}
	VerboseLog("Virtual environment: %s", env.Root)

	// Step 7: upgrade the bundled installer, then install dependencies.
	progress("Installing dependencies...")
	if err := runStep(ctx, baseDir, env.Pip, "install", "--upgrade", "pip"); err != nil {
		return err
	}

	// Step 8: framework-specific install + bootstrap.
	switch fw {
	case model.FrameworkDjango:
		if err := runStep(ctx, baseDir, env.Pip, "install", "-r", "requirements.txt"); err != nil {
			return err
		}
		progress("Initializing Django project...")
		if err := runStep(ctx, baseDir, env.Python, "manage.py", "migrate"); err != nil {
			return err
		}
	case model.FrameworkFastAPI:
		// The editable install doubles as the bootstrap step: it pulls
		// in the dependencies declared by the generated setup.py.
		if err := runStep(ctx, baseDir, env.Pip, "install", "-e", "."); err != nil {
			return err
		}
	}

	// Step 9: report.
	printGenerateResult(spec, &env, registry.Len())
	return nil
}

// loadOptions resolves the options file: an explicit --config path must
// exist and parse; otherwise the default file is picked up from the
// working directory when present.
func loadOptions(cwd, explicitPath string) (*config.Options, error) {
	if explicitPath != "" {
		return config.Load(explicitPath)
	}
	return config.LoadDefault(cwd)
}

// checkTargetDir rejects a pre-existing non-empty target directory
// unless force is set. A pre-existing file at the target path is always
// an error. This makes the merge-vs-reject choice explicit instead of
// silently overwriting.
func checkTargetDir(baseDir string, force bool) error {
	info, err := os.Stat(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return model.WrapCLIError(model.ExitGeneralError, "failed to inspect target directory", err)
	}

	if !info.IsDir() {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("target %q exists and is not a directory", baseDir))
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to inspect target directory", err)
	}
	if len(entries) > 0 && !force {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("target directory %q is not empty (use --force to generate into it anyway)", baseDir))
	}
	return nil
}

// renderRegistry dispatches to the framework's registry builder.
func renderRegistry(fw model.Framework, params template.Params) (*template.Registry, error) {
	switch fw {
	case model.FrameworkDjango:
		return template.Django(params)
	case model.FrameworkFastAPI:
		return template.FastAPI(params)
	default:
		return nil, fmt.Errorf("unsupported framework %q", fw)
	}
}

// runStep executes one external pipeline command. A failure is wrapped
// into a CLIError so Execute reports the failing command line and its
// captured stderr and terminates with exit code 1. No later step runs
// after a failure.
func runStep(ctx context.Context, dir, name string, args ...string) error {
	VerboseLog("Running: %s", execx.DisplayName(name, args...))
	if _, err := execx.Run(ctx, dir, name, args...); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "external command failed", err)
	}
	return nil
}

// progress prints a human-readable progress line. Suppressed in JSON
// mode so stdout stays machine parseable.
func progress(msg string) {
	if !IsJSONOutput() {
		fmt.Println(msg)
	}
}
