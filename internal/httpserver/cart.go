package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vape_shop/internal/cart"
	"github.com/Skotchmaster/vape_shop/internal/catalog"
	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/internal/transport"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

type CartHTTP struct {
	Cart    *cart.Store
	Catalog *catalog.Store
}

func (h *CartHTTP) snapshot() transport.CartResponse {
	lines := h.Cart.Lines()
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return transport.CartResponse{
		Items:      lines,
		TotalItems: total,
		Totals:     checkout.ComputeTotal(lines),
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "product_id required", "error", err)
		return err
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	product, ok := h.Catalog.Get(req.ProductID)
	if !ok {
		l.Warn("add_to_cart_error", "status", 404, "reason", "product not found", "product_id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	if err := h.Cart.Add(ctx, product, qty); err != nil {
		if errors.Is(err, cart.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "reason", "quantity must be at least 1", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
		}
		l.Error("add_to_cart_error", "status", 500, "reason", "cannot save cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save cart")
	}

	l.Info("add_to_cart_success", "product_id", product.ID, "quantity", qty)
	return c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	id := c.Param("id")
	var req transport.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_quantity_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	found, err := h.Cart.SetQuantity(ctx, id, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrValidation) {
			l.Warn("set_quantity_error", "status", 400, "reason", "quantity must be at least 1", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
		}
		l.Error("set_quantity_error", "status", 500, "reason", "cannot save cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save cart")
	}
	if !found {
		l.Warn("set_quantity_skipped", "status", 200, "reason", "item not in cart", "product_id", id)
	}

	return c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	id := c.Param("id")
	if _, err := h.Cart.Remove(ctx, id); err != nil {
		l.Error("remove_item_error", "status", 500, "reason", "cannot save cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save cart")
	}

	return c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	if err := h.Cart.Clear(ctx); err != nil {
		l.Error("clear_cart_error", "status", 500, "reason", "cannot save cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save cart")
	}

	return c.NoContent(http.StatusNoContent)
}
