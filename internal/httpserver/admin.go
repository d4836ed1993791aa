package httpserver

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vape_shop/internal/admin"
	"github.com/Skotchmaster/vape_shop/internal/catalog"
	"github.com/Skotchmaster/vape_shop/internal/filter"
	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/internal/transport"
	"github.com/Skotchmaster/vape_shop/internal/util"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
	"github.com/Skotchmaster/vape_shop/pkg/tokens"
)

type AdminHTTP struct {
	Auth    *admin.Authenticator
	Catalog *catalog.Store
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	session, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrValidation) {
			l.Warn("login_error", "status", 400, "reason", "username and password are required")
			return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
		}
		if errors.Is(err, admin.ErrInvalidCredentials) {
			l.Warn("login_error", "status", 401, "reason", "invalid credentials", "username", req.Username)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		l.Error("login_error", "status", 500, "reason", "cannot issue token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot issue token")
	}

	c.SetCookie(tokens.CreateCookie(tokens.AccessCookieName, session.Token, "/", session.ExpiresAt))
	l.Info("login_success", "username", req.Username)
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "expires_at": session.ExpiresAt})
}

func (h *AdminHTTP) Logout(c echo.Context) error {
	c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/"))
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHTTP) ListProducts(c echo.Context) error {
	category, ok := parseCategory(c.QueryParam("category"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}

	matched := filter.AdminMatch(h.Catalog.List(), category, strings.TrimSpace(c.QueryParam("q")))
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.AdminPageSize)
	p := filter.Paginate(matched, page, size)

	return c.JSON(http.StatusOK, map[string]any{"data": p.Items, "meta": p.Meta})
}

func (h *AdminHTTP) ExportProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.export")

	var buf bytes.Buffer
	if err := admin.ExportCSV(&buf, h.Catalog.List()); err != nil {
		l.Error("export_error", "status", 500, "reason", "cannot encode csv", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot export products")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *AdminHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_product")

	var req models.ProductFields
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	created, err := h.Catalog.Create(ctx, req)
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("product_create_error", "status", 500, "reason", "cannot save catalog", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save catalog")
	}

	l.Info("create_product_success", "product_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.patch_product")

	id := c.Param("id")
	var req models.ProductPatch
	if err := c.Bind(&req); err != nil {
		l.Warn("product_patch_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, found, err := h.Catalog.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			l.Warn("product_patch_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("product_patch_error", "status", 500, "reason", "cannot save catalog", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save catalog")
	}
	if !found {
		l.Warn("product_patch_skipped", "status", 204, "reason", "product not in catalog", "id", id)
		return c.NoContent(http.StatusNoContent)
	}

	l.Info("patch_product_success", "product_id", id)
	return c.JSON(http.StatusOK, prod)
}

func (h *AdminHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_product")

	id := c.Param("id")
	deleted, err := h.Catalog.Delete(ctx, id)
	if err != nil {
		l.Error("product_delete_error", "status", 500, "reason", "cannot save catalog", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save catalog")
	}

	l.Info("delete_product_success", "product_id", id, "deleted", deleted)
	return c.NoContent(http.StatusNoContent)
}
