// django.go implements the "apiseed django" command.
//
// It generates a Django REST Framework project: config/ settings
// package, one Django app per use case, manage.py entry point, and the
// project manifests, then runs the shared scaffolding pipeline. The
// framework bootstrap step for Django is the initial schema migration
// (`manage.py migrate`) executed with the provisioned virtualenv's
// interpreter.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/apiseed/internal/model"
)

// NewDjangoCommand creates the "django" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewDjangoCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "django <project-name>",
		Short: "Generate a Django REST Framework project",
		Long: `Generate a Django REST Framework project with a clean layout.

The command writes the full source tree, initializes a git repository,
creates a virtual environment under the project directory, installs the
requirements, and applies the initial database migrations.

Examples:
  apiseed django demo
  apiseed django --python python3.12 demo
  apiseed django --skip-env demo
  apiseed django --overrides my-overrides.jsonc demo`,

		Args: exactProjectNameArg(model.FrameworkDjango),

		// RunE is used instead of Run so errors flow to the Execute
		// error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), model.FrameworkDjango, args[0], flags)
		},
	}

	registerGenerateFlags(cmd, flags)
	return cmd
}
