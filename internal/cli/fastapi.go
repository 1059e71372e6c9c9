// fastapi.go implements the "apiseed fastapi" command.
//
// It generates a FastAPI project with a src/ layout: shared
// infrastructure under src/common/, one package per use case, and a
// mirrored tests/ tree. The framework bootstrap step for FastAPI is the
// editable install (`pip install -e .`) against the generated setup.py,
// which also installs the declared dependencies.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/apiseed/internal/model"
)

// NewFastAPICommand creates the "fastapi" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewFastAPICommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "fastapi <project-name>",
		Short: "Generate a FastAPI project",
		Long: `Generate a FastAPI project with a clean src/ layout.

The command writes the full source tree, initializes a git repository,
creates a virtual environment under the project directory, and installs
the project in editable mode together with its dependencies.

Examples:
  apiseed fastapi demo
  apiseed fastapi --python python3.12 demo
  apiseed fastapi --skip-env demo
  apiseed fastapi --config team-defaults.yaml demo`,

		Args: exactProjectNameArg(model.FrameworkFastAPI),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), model.FrameworkFastAPI, args[0], flags)
		},
	}

	registerGenerateFlags(cmd, flags)
	return cmd
}
