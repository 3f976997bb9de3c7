package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/girlhub/storefront/internal/cart"
	"github.com/girlhub/storefront/internal/currency"
	"github.com/girlhub/storefront/internal/logging"
)

type CartHTTP struct {
	Svc       *cart.Service
	Converter *currency.Converter
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.View(h.Converter))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.Svc.AddItem(ctx, req.ProductID, req.Quantity); err != nil {
		l.Warn("add_to_cart_failed", "product_id", req.ProductID, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, h.Svc.View(h.Converter))
}

// UpdateQuantity applies a signed delta; a line that reaches zero is gone
// from the returned view.
func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	var req struct {
		ProductID int `json:"product_id"`
		Delta     int `json:"delta"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateQuantity(ctx, req.ProductID, req.Delta); err != nil {
		l.Error("update_quantity_failed", "product_id", req.ProductID, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.Svc.View(h.Converter))
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_item_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.RemoveItem(ctx, req.ProductID); err != nil {
		l.Error("remove_item_failed", "product_id", req.ProductID, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item removed from bag"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.Svc.Clear(ctx); err != nil {
		logging.FromContext(ctx).Error("clear_cart_failed", "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "cart cleared"})
}
