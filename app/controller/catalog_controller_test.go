package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navillera/models"
	"navillera/service"
)

func newCatalogController(t *testing.T, charms ...string) *CatalogController {
	t.Helper()
	dir := t.TempDir()
	for _, name := range charms {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644))
	}
	catalog := service.NewCatalogService(dir)
	files := service.NewCharmFileService(dir, nil)
	optimizer := service.NewImageOptimizer(filepath.Join(dir, "cache"))
	return NewCatalogController(catalog, files, optimizer, nil, nil, "")
}

func TestGetCatalogAll(t *testing.T) {
	c := newCatalogController(t, "classic_solid_star.png", "premium_iconic_moon.png")

	w := httptest.NewRecorder()
	c.GetCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CategoryAll, resp.Category)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Counts[models.CategoryAll])
}

func TestGetCatalogUnknownCategoryFallsBackToAll(t *testing.T) {
	c := newCatalogController(t, "classic_solid_star.png")

	w := httptest.NewRecorder()
	c.GetCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog?category=Mystery", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CategoryAll, resp.Category)
}

func TestGetCatalogFiltered(t *testing.T) {
	c := newCatalogController(t, "classic_solid_star.png", "premium_iconic_moon.png")

	w := httptest.NewRecorder()
	c.GetCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog?category=Premium+Charms", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "premium_iconic_moon.png", resp.Items[0].Filename)
}

func TestServeCharmOriginal(t *testing.T) {
	c := newCatalogController(t, "classic_solid_star.png")

	w := httptest.NewRecorder()
	c.ServeCharm(w, httptest.NewRequest(http.MethodGet, "/charms/classic_solid_star.png", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "img", w.Body.String())
}

func TestServeCharmEscapedFilename(t *testing.T) {
	c := newCatalogController(t, "Letters_Gold (1).png")

	w := httptest.NewRecorder()
	c.ServeCharm(w, httptest.NewRequest(http.MethodGet, "/charms/Letters_Gold%20%281%29.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServeCharmMissing(t *testing.T) {
	c := newCatalogController(t)

	w := httptest.NewRecorder()
	c.ServeCharm(w, httptest.NewRequest(http.MethodGet, "/charms/nope.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeCharmRejectsTraversal(t *testing.T) {
	c := newCatalogController(t)

	w := httptest.NewRecorder()
	c.ServeCharm(w, httptest.NewRequest(http.MethodGet, "/charms/..%2Fsecrets.png", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeCharmBadRenditionFallsBackToOriginal(t *testing.T) {
	// "img" is not decodable, so the optimizer fails and the original is
	// served instead.
	c := newCatalogController(t, "classic_solid_star.png")

	w := httptest.NewRecorder()
	c.ServeCharm(w, httptest.NewRequest(http.MethodGet, "/charms/classic_solid_star.png?size=thumb", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "img", w.Body.String())
}

func TestSyncCharmsUnconfigured(t *testing.T) {
	c := newCatalogController(t)

	w := httptest.NewRecorder()
	c.SyncCharms(w, httptest.NewRequest(http.MethodPost, "/admin/charms/sync", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
