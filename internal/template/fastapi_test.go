package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFastAPIFileSet verifies the complete file set for the default
// parameters: src layout with common infrastructure, two use-case
// packages, mirrored test packages, and project manifests.
func TestFastAPIFileSet(t *testing.T) {
	r, err := FastAPI(Params{ProjectName: "demo"})
	require.NoError(t, err)

	expected := []string{
		"src/__init__.py",
		"src/common/__init__.py",
		"tests/__init__.py",
		"src/common/base_models.py",
		"src/common/config.py",
		"src/common/database.py",
		"src/common/exceptions.py",
		"src/common/utils.py",
		"src/common/router.py",
		"src/usecase1/__init__.py",
		"src/usecase1/constants.py",
		"src/usecase1/dependencies.py",
		"src/usecase1/models.py",
		"src/usecase1/schemas.py",
		"src/usecase1/services.py",
		"src/usecase1/routers.py",
		"tests/test_usecase1/__init__.py",
		"tests/test_usecase1/test_routes.py",
		"src/usecase2/__init__.py",
		"src/usecase2/constants.py",
		"src/usecase2/dependencies.py",
		"src/usecase2/models.py",
		"src/usecase2/schemas.py",
		"src/usecase2/services.py",
		"src/usecase2/routers.py",
		"tests/test_usecase2/__init__.py",
		"tests/test_usecase2/test_routes.py",
		"tests/conftest.py",
		"main.py",
		"setup.py",
		".env",
		".gitignore",
		"README.md",
	}

	assert.Equal(t, len(expected), r.Len())
	for _, path := range expected {
		_, ok := r.Get(path)
		assert.True(t, ok, "missing registry entry %q", path)
	}
}

// TestFastAPIRouterAggregation verifies that the aggregation router
// includes each configured use case under its own prefix and tag.
func TestFastAPIRouterAggregation(t *testing.T) {
	r, err := FastAPI(Params{ProjectName: "shop", UseCases: []string{"orders", "payments"}})
	require.NoError(t, err)

	router, ok := r.Get("src/common/router.py")
	require.True(t, ok)
	assert.Contains(t, router.Content, "from ..orders.routers import router as orders_router")
	assert.Contains(t, router.Content, "from ..payments.routers import router as payments_router")
	assert.Contains(t, router.Content, "prefix=\"/orders\"")
	assert.Contains(t, router.Content, "tags=[\"payments\"]")
	assert.NotContains(t, router.Content, "usecase1")
}

// TestFastAPISetupInterpolation verifies that setup.py carries the
// project name verbatim and the pinned dependency ranges.
func TestFastAPISetupInterpolation(t *testing.T) {
	r, err := FastAPI(Params{ProjectName: "demo"})
	require.NoError(t, err)

	setup, ok := r.Get("setup.py")
	require.True(t, ok)
	assert.Contains(t, setup.Content, "name=\"demo\",")
	assert.Contains(t, setup.Content, "\"fastapi>=0.100.0\",")
	assert.Contains(t, setup.Content, "package_dir={\"\": \"src\"},")
}

// TestFastAPIRouteTests verifies the per-use-case route test content.
func TestFastAPIRouteTests(t *testing.T) {
	r, err := FastAPI(Params{ProjectName: "demo", UseCases: []string{"orders"}})
	require.NoError(t, err)

	routeTest, ok := r.Get("tests/test_orders/test_routes.py")
	require.True(t, ok)
	assert.Contains(t, routeTest.Content, "def test_orders_create_item(client):")
	assert.Contains(t, routeTest.Content, "\"/orders/items/\",")
}

// TestFastAPIReadmeInterpolation verifies the README title and
// structure diagram carry the project name verbatim.
func TestFastAPIReadmeInterpolation(t *testing.T) {
	r, err := FastAPI(Params{ProjectName: "my_api"})
	require.NoError(t, err)

	readme, ok := r.Get("README.md")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(readme.Content, "# my_api\n"))
	assert.Contains(t, readme.Content, "\nmy_api/\n")
}

// TestFastAPIDeterminism verifies byte-identical output across renders.
func TestFastAPIDeterminism(t *testing.T) {
	p := Params{ProjectName: "demo"}

	first, err := FastAPI(p)
	require.NoError(t, err)
	second, err := FastAPI(p)
	require.NoError(t, err)

	assert.Equal(t, first.Files(), second.Files())
}
