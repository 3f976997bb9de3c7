package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/girlhub/storefront/internal/currency"
	"github.com/girlhub/storefront/internal/logging"
)

// PrefsHTTP serves the entry-modal preferences: display currency and the
// first-visit acknowledgement.
type PrefsHTTP struct {
	Converter *currency.Converter
}

func (h *PrefsHTTP) GetCurrency(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Converter.State())
}

func (h *PrefsHTTP) SetCurrency(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prefs.set_currency")

	var req struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("set_currency_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	// Unknown codes change nothing; the current state comes back either way.
	if !h.Converter.Set(ctx, req.Code) {
		l.Warn("unknown_currency_ignored", "code", req.Code)
	}
	return c.JSON(http.StatusOK, h.Converter.State())
}

func (h *PrefsHTTP) GetVisited(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"visited": h.Converter.Visited(c.Request().Context())})
}

func (h *PrefsHTTP) MarkVisited(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.Converter.MarkVisited(ctx); err != nil {
		logging.FromContext(ctx).Error("mark_visited_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"visited": true})
}
