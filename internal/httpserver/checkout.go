package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/internal/transport"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

type CheckoutHTTP struct {
	Svc *checkout.Service
}

func (h *CheckoutHTTP) ValidateForm(c echo.Context) error {
	var form checkout.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	errs := checkout.Validate(form)
	return c.JSON(http.StatusOK, transport.ValidationResponse{Valid: len(errs) == 0, Errors: errs})
}

func (h *CheckoutHTTP) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.submit")

	var form checkout.Form
	if err := c.Bind(&form); err != nil {
		l.Warn("checkout_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	rec, err := h.Svc.Submit(ctx, form)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			l.Warn("checkout_error", "status", 400, "reason", "invalid form", "error", err)
			return c.JSON(http.StatusBadRequest, map[string]any{"errors": verr.Fields})
		case errors.Is(err, checkout.ErrEmptyCart):
			l.Warn("checkout_error", "status", 409, "reason", "cart is empty")
			return echo.NewHTTPError(http.StatusConflict, "cart is empty")
		case errors.Is(err, checkout.ErrSubmitInProgress):
			l.Warn("checkout_error", "status", 409, "reason", "submission in progress")
			return echo.NewHTTPError(http.StatusConflict, "order is already being submitted")
		default:
			l.Error("checkout_error", "status", 500, "reason", "submission failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, checkout.GenericFailure)
		}
	}

	l.Info("checkout_success", "order_id", rec.ID, "total", rec.Total)
	return c.JSON(http.StatusCreated, transport.CheckoutResponse{Order: rec, Summary: checkout.Summary(*rec)})
}
