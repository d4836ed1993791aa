package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vape_shop/pkg/tokens"
)

const RoleAdmin = "admin"

type AdminAuth struct {
	JWTSecret []byte
}

func NewAdminAuth(secret []byte) *AdminAuth {
	return &AdminAuth{JWTSecret: secret}
}

// RequireAdmin accepts requests carrying a valid admin access cookie.
func (m *AdminAuth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accessCookie, err := c.Cookie(tokens.AccessCookieName)
		if err != nil || accessCookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(accessCookie.Value, m.JWTSecret)
		if err != nil || claims == nil {
			c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/"))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		if claims.Role != RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}

		c.Set("user_id", claims.Subject)
		c.Set("role", claims.Role)
		return next(c)
	}
}
