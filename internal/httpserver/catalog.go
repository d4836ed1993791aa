package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vape_shop/internal/catalog"
	"github.com/Skotchmaster/vape_shop/internal/filter"
	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/internal/search"
	"github.com/Skotchmaster/vape_shop/internal/transport"
	"github.com/Skotchmaster/vape_shop/internal/util"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

const (
	featuredLimit    = 8
	perCategoryLimit = 4
	relatedLimit     = 4
)

type CatalogHTTP struct {
	Store  *catalog.Store
	Search search.Searcher
}

func parseCategory(raw string) (models.Category, bool) {
	if raw == "" {
		return "", true
	}
	c := models.Category(raw)
	return c, c.Valid()
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	category, ok := parseCategory(c.QueryParam("category"))
	if !ok {
		l.Warn("get_products_error", "status", 400, "reason", "unknown category", "category", c.QueryParam("category"))
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}

	all := h.Store.List()
	lo, hi := filter.PriceBounds(all)
	criteria := filter.Criteria{
		Category: category,
		Query:    strings.TrimSpace(c.QueryParam("q")),
		PriceMin: util.ParseInt64Ptr(c.QueryParam("price_min")),
		PriceMax: util.ParseInt64Ptr(c.QueryParam("price_max")),
	}.WithDefaults(lo, hi)

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	p := filter.Paginate(filter.Apply(all, criteria), page, size)

	l.Info("get_products_success", "total", p.Meta.Total)
	return c.JSON(http.StatusOK, map[string]any{
		"data": p.Items,
		"meta": map[string]any{
			"page":        p.Meta.Page,
			"size":        p.Meta.Size,
			"total":       p.Meta.Total,
			"total_pages": p.Meta.TotalPages,
			"has_prev":    p.Meta.HasPrev,
			"has_next":    p.Meta.HasNext,
			"title":       category.Label(),
			"price_min":   lo,
			"price_max":   hi,
		},
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id := c.Param("id")
	product, ok := h.Store.Get(id)
	if !ok {
		l.Warn("get_product_failed", "status", 404, "reason", "product with this id dont exist", "id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":    product,
		"related": h.Store.Related(id, relatedLimit),
	})
}

func (h *CatalogHTTP) GetFeatured(c echo.Context) error {
	byCategory := make(map[models.Category][]models.Product, len(models.Categories))
	for _, cat := range models.Categories {
		byCategory[cat] = h.Store.ByCategory(cat, perCategoryLimit)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"featured":    h.Store.Featured(featuredLimit),
		"by_category": byCategory,
	})
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	counts := map[models.Category]int{}
	for _, p := range h.Store.List() {
		counts[p.Category]++
	}

	out := make([]transport.CategoryInfo, 0, len(models.Categories))
	for _, cat := range models.Categories {
		out = append(out, transport.CategoryInfo{ID: cat, Label: cat.Label(), Count: counts[cat]})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		l.Warn("search_error", "status", 400, "reason", "empty query")
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	total, products, err := h.Search.Search(ctx, q, from, size)
	if err != nil {
		l.Error("search_error", "status", 500, "reason", "search backend failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
