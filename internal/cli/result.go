package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/mmr-tortoise/apiseed/internal/model"
	"github.com/mmr-tortoise/apiseed/internal/pyenv"
)

// generateResult is the JSON success payload. env is omitted when the
// run skipped provisioning.
type generateResult struct {
	Project model.ProjectSpec `json:"project"`
	Files   int               `json:"files"`
	Env     *pyenv.Env        `json:"env,omitempty"`
	SkipEnv bool              `json:"skipEnv"`
}

// printGenerateResult prints the success summary. env is nil when
// provisioning was skipped; the text output then tells the user how to
// finish setup by hand.
func printGenerateResult(spec model.ProjectSpec, env *pyenv.Env, fileCount int) {
	if IsJSONOutput() {
		result := generateResult{
			Project: spec,
			Files:   fileCount,
			Env:     env,
			SkipEnv: env == nil,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("\nProject %s created successfully!\n\n", spec.Name)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", spec.Name)

	if env == nil {
		fmt.Printf("  %s -m venv %s\n", pyenv.DefaultInterpreter(), pyenv.VenvDirName)
		fmt.Printf("  %s\n", activateCommand(runtime.GOOS))
		switch spec.Framework {
		case model.FrameworkDjango:
			fmt.Println("  pip install -r requirements.txt")
			fmt.Println("  python manage.py migrate")
		case model.FrameworkFastAPI:
			fmt.Println("  pip install -e .")
		}
	} else {
		fmt.Printf("  %s\n", activateCommand(runtime.GOOS))
	}

	switch spec.Framework {
	case model.FrameworkDjango:
		fmt.Println("  python manage.py runserver")
		fmt.Println()
		fmt.Println("API routes are served under http://127.0.0.1:8000/api/v1/")
		fmt.Println("Admin site at http://127.0.0.1:8000/admin/ (create a superuser with `python manage.py createsuperuser`)")
	case model.FrameworkFastAPI:
		fmt.Println("  python main.py")
		fmt.Println()
		fmt.Println("Interactive API docs at http://127.0.0.1:8000/docs")
	}
}

// activateCommand is the shell line that activates the project
// virtualenv, relative to the project directory. POSIX shells need the
// `source` builtin; cmd.exe runs the batch file directly.
func activateCommand(goos string) string {
	l := pyenv.LayoutFor(goos)
	rel := filepath.Join(pyenv.VenvDirName, l.BinDir, l.ActivateFile)
	if goos == "windows" {
		return rel
	}
	return "source " + rel
}
