package template

// fastapi.go builds the template registry for the FastAPI generator.
// The generated tree uses a src/ layout: shared infrastructure under
// src/common/, one package per use case, and a tests/ tree mirroring
// the use cases. setup.py declares the dependencies; the editable
// install against it is the framework bootstrap step.

// fastapiData is the template data for project-level FastAPI assets.
type fastapiData struct {
	ProjectName string
	Apps        []appInfo
}

// FastAPI renders the FastAPI project registry for the given parameters.
// Deterministic in the same way as Django.
func FastAPI(p Params) (*Registry, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	apps := make([]appInfo, 0, len(p.useCases()))
	for _, uc := range p.useCases() {
		apps = append(apps, appInfoFor(uc))
	}
	data := fastapiData{ProjectName: p.ProjectName, Apps: apps}

	r := NewRegistry()

	// Package markers. src/ and tests/ need them so that the conftest
	// import path (src.common.database) and the relative imports between
	// use-case packages resolve.
	for _, marker := range []string{"src/__init__.py", "src/common/__init__.py", "tests/__init__.py"} {
		if err := r.Add(marker, ""); err != nil {
			return nil, err
		}
	}

	// Shared infrastructure under src/common/.
	commonStatic := []string{"base_models.py", "config.py", "database.py", "exceptions.py", "utils.py"}
	for _, name := range commonStatic {
		content, err := renderAsset("fastapi/common/"+name, nil)
		if err != nil {
			return nil, err
		}
		if err := r.Add("src/common/"+name, content); err != nil {
			return nil, err
		}
	}

	// The aggregation router wires every use-case router under the API
	// version prefix, so it is rendered from the app list.
	routerFile, err := renderAsset("fastapi/common/router.py.tmpl", data)
	if err != nil {
		return nil, err
	}
	if err := r.Add("src/common/router.py", routerFile); err != nil {
		return nil, err
	}

	// One feature-slice package per use case, plus its test package.
	for _, app := range apps {
		if err := addFastAPIUseCase(r, app); err != nil {
			return nil, err
		}
	}

	// Shared test fixtures.
	conftest, err := renderAsset("fastapi/tests/conftest.py", nil)
	if err != nil {
		return nil, err
	}
	if err := r.Add("tests/conftest.py", conftest); err != nil {
		return nil, err
	}

	// Project-level files: entry point, package setup, manifests.
	projectFiles := []struct {
		path  string
		asset string
		data  any
	}{
		{"main.py", "fastapi/main.py", nil},
		{"setup.py", "fastapi/setup.py.tmpl", data},
		{".env", "fastapi/env", nil},
		{".gitignore", "gitignore", nil},
		{"README.md", "fastapi/README.md.tmpl", data},
	}
	for _, pf := range projectFiles {
		content, err := renderAsset(pf.asset, pf.data)
		if err != nil {
			return nil, err
		}
		if err := r.Add(pf.path, content); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// addFastAPIUseCase registers one use-case package under src/ and its
// matching test package under tests/.
func addFastAPIUseCase(r *Registry, app appInfo) error {
	if err := r.Add("src/"+app.Name+"/__init__.py", ""); err != nil {
		return err
	}

	static := []string{"constants.py", "dependencies.py", "models.py", "schemas.py", "services.py", "routers.py"}
	for _, name := range static {
		content, err := renderAsset("fastapi/usecase/"+name, nil)
		if err != nil {
			return err
		}
		if err := r.Add("src/"+app.Name+"/"+name, content); err != nil {
			return err
		}
	}

	if err := r.Add("tests/test_"+app.Name+"/__init__.py", ""); err != nil {
		return err
	}
	routeTest, err := renderAsset("fastapi/tests/test_routes.py.tmpl", app)
	if err != nil {
		return err
	}
	return r.Add("tests/test_"+app.Name+"/test_routes.py", routeTest)
}
