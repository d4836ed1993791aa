package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/internal/transport"
)

type listResponse struct {
	Data []models.Product `json:"data"`
	Meta struct {
		Page       int    `json:"page"`
		Size       int    `json:"size"`
		Total      int64  `json:"total"`
		TotalPages int64  `json:"total_pages"`
		HasPrev    bool   `json:"has_prev"`
		HasNext    bool   `json:"has_next"`
		Title      string `json:"title"`
		PriceMin   int64  `json:"price_min"`
		PriceMax   int64  `json:"price_max"`
	} `json:"meta"`
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusOK, env.doJSONRequest(http.MethodGet, "/health/live", nil).Code)
	assert.Equal(t, http.StatusOK, env.doJSONRequest(http.MethodGet, "/health/ready", nil).Code)
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/api/v1/catalog/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[listResponse](t, rec)
	assert.Len(t, resp.Data, 12)
	assert.Equal(t, int64(12), resp.Meta.Total)
	assert.Equal(t, "Каталог", resp.Meta.Title)
	assert.Equal(t, int64(290), resp.Meta.PriceMin)
	assert.Equal(t, int64(2990), resp.Meta.PriceMax)
	assert.False(t, resp.Meta.HasNext)
}

func TestGetProducts_PageBeyondRange(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login()

	for _, path := range []string{
		"/api/v1/catalog/products?page=9223372036854775807",
		"/api/v1/admin/products?page=9223372036854775807",
	} {
		rec := env.doJSONRequest(http.MethodGet, path, nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code, path)

		resp := decode[listResponse](t, rec)
		assert.Empty(t, resp.Data, path)
		assert.Equal(t, int64(12), resp.Meta.Total, path)
		assert.False(t, resp.Meta.HasNext, path)
	}
}

func TestGetProducts_Filtered(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/api/v1/catalog/products?category=liquids&price_min=600&price_max=800", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[listResponse](t, rec)
	names := make([]string, 0, len(resp.Data))
	for _, p := range resp.Data {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Jam Monster Blueberry", "Nasty Juice Cush Man"}, names)
	assert.Equal(t, "Жидкости", resp.Meta.Title)

	rec = env.doJSONRequest(http.MethodGet, "/api/v1/catalog/products?q=XROS&size=1&page=2", nil)
	resp = decode[listResponse](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Картридж XROS 3", resp.Data[0].Name)
	assert.True(t, resp.Meta.HasPrev)
	assert.Equal(t, int64(2), resp.Meta.TotalPages)

	rec = env.doJSONRequest(http.MethodGet, "/api/v1/catalog/products?category=snacks", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	xros := productByName(t, env.Catalog, "Vaporesso XROS 3")

	rec := env.doJSONRequest(http.MethodGet, "/api/v1/catalog/products/"+xros.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		Data    models.Product   `json:"data"`
		Related []models.Product `json:"related"`
	}](t, rec)
	assert.Equal(t, xros, resp.Data)
	require.Len(t, resp.Related, 3)
	for _, p := range resp.Related {
		assert.Equal(t, models.CategoryPodSystems, p.Category)
		assert.NotEqual(t, xros.ID, p.ID)
	}

	rec = env.doJSONRequest(http.MethodGet, "/api/v1/catalog/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFeaturedAndCategories(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/api/v1/catalog/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decode[struct {
		Featured   []models.Product                     `json:"featured"`
		ByCategory map[models.Category][]models.Product `json:"by_category"`
	}](t, rec)
	assert.Len(t, featured.Featured, 8)
	assert.Len(t, featured.ByCategory[models.CategoryAccessories], 4)

	rec = env.doJSONRequest(http.MethodGet, "/api/v1/catalog/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decode[[]transport.CategoryInfo](t, rec)
	assert.Equal(t, []transport.CategoryInfo{
		{ID: models.CategoryPodSystems, Label: "Под-системы", Count: 4},
		{ID: models.CategoryLiquids, Label: "Жидкости", Count: 4},
		{ID: models.CategoryAccessories, Label: "Аксессуары", Count: 4},
	}, cats)
}

func TestSearchProducts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/api/v1/catalog/search?q=smoant", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[struct {
		Total    int64            `json:"total"`
		Products []models.Product `json:"products"`
	}](t, rec)
	assert.Equal(t, int64(2), resp.Total)

	rec = env.doJSONRequest(http.MethodGet, "/api/v1/catalog/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
