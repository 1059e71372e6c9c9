package template

// django.go builds the template registry for the Django REST Framework
// generator. The generated tree follows the classic Django layout: a
// config/ settings package, one Django app per use case, and manage.py
// as the executable entry point.

// djangoData is the template data for project-level Django assets.
type djangoData struct {
	ProjectName string
	Apps        []appInfo
}

// Django renders the Django project registry for the given parameters.
// It is deterministic: the same Params always produce the same file set
// with byte-identical content.
func Django(p Params) (*Registry, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	apps := make([]appInfo, 0, len(p.useCases()))
	for _, uc := range p.useCases() {
		apps = append(apps, appInfoFor(uc))
	}
	data := djangoData{ProjectName: p.ProjectName, Apps: apps}

	r := NewRegistry()

	// config/ package: settings, URL aggregation, WSGI/ASGI entry points.
	if err := r.Add("config/__init__.py", ""); err != nil {
		return nil, err
	}
	projectAssets := []struct {
		path  string
		asset string
	}{
		{"config/settings.py", "django/settings.py.tmpl"},
		{"config/urls.py", "django/urls.py.tmpl"},
		{"config/wsgi.py", "django/wsgi.py"},
		{"config/asgi.py", "django/asgi.py"},
	}
	for _, pa := range projectAssets {
		content, err := renderAsset(pa.asset, data)
		if err != nil {
			return nil, err
		}
		if err := r.Add(pa.path, content); err != nil {
			return nil, err
		}
	}

	// manage.py must carry the executable bit after materialization.
	manage, err := renderAsset("django/manage.py", nil)
	if err != nil {
		return nil, err
	}
	if err := r.AddExecutable("manage.py", manage); err != nil {
		return nil, err
	}

	// One Django app per use case. apps.py is rendered per app so the
	// AppConfig class matches the entry settings.py installs.
	for _, app := range apps {
		if err := addDjangoApp(r, app); err != nil {
			return nil, err
		}
	}

	// Project-level manifest files.
	manifests := []struct {
		path  string
		asset string
		data  any
	}{
		{"requirements.txt", "django/requirements.txt", nil},
		{".env", "django/env", nil},
		{".gitignore", "gitignore", nil},
		{"README.md", "django/README.md.tmpl", data},
	}
	for _, m := range manifests {
		content, err := renderAsset(m.asset, m.data)
		if err != nil {
			return nil, err
		}
		if err := r.Add(m.path, content); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// addDjangoApp registers one app module: package marker, app
// configuration, model/serializer/view/urls/admin/tests files, and the
// migrations package marker Django expects.
func addDjangoApp(r *Registry, app appInfo) error {
	if err := r.Add(app.Name+"/__init__.py", ""); err != nil {
		return err
	}

	appsFile, err := renderAsset("django/app/apps.py.tmpl", app)
	if err != nil {
		return err
	}
	if err := r.Add(app.Name+"/apps.py", appsFile); err != nil {
		return err
	}

	static := []string{"models.py", "serializers.py", "views.py", "urls.py", "admin.py", "tests.py"}
	for _, name := range static {
		content, err := renderAsset("django/app/"+name, nil)
		if err != nil {
			return err
		}
		if err := r.Add(app.Name+"/"+name, content); err != nil {
			return err
		}
	}

	return r.Add(app.Name+"/migrations/__init__.py", "")
}
