package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/girlhub/storefront/internal/catalog"
	"github.com/girlhub/storefront/internal/currency"
	"github.com/girlhub/storefront/internal/logging"
)

type CatalogHTTP struct {
	Catalog   *catalog.Catalog
	Converter *currency.Converter
}

// productView is a product plus its price formatted in the display
// currency. Base prices are never rewritten.
type productView struct {
	catalog.Product
	DisplayPrice string `json:"display_price"`
}

func (h *CatalogHTTP) views(products []catalog.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productView{Product: p, DisplayPrice: h.Converter.Format(p.Price)})
	}
	return out
}

// ListProducts applies the filter spec from query parameters.
// Defaults mirror the products page: every category, 0..500, featured order.
func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	spec := catalog.FilterSpec{
		Categories: c.QueryParams()["category"],
		MinPrice:   floatParam(c.QueryParam("min_price"), 0),
		MaxPrice:   floatParam(c.QueryParam("max_price"), 500),
		Sort:       catalog.SortKey(c.QueryParam("sort")),
	}
	if len(spec.Categories) == 0 {
		spec.Categories = []string{catalog.CategoryAll}
	}

	result := catalog.Apply(h.Catalog.All(), spec)
	return c.JSON(http.StatusOK, map[string]any{
		"products": h.views(result),
		"count":    len(result),
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	p, ok := h.Catalog.Lookup(id)
	if !ok {
		l.Warn("get_product_failed", "status", 404, "product_id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, productView{Product: p, DisplayPrice: h.Converter.Format(p.Price)})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	result := h.Catalog.Search(c.QueryParam("q"))
	return c.JSON(http.StatusOK, map[string]any{
		"products": h.views(result),
		"count":    len(result),
	})
}

func (h *CatalogHTTP) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Categories())
}

func floatParam(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
