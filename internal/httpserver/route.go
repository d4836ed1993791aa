package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/vape_shop/pkg/middleware/auth"
)

type Deps struct {
	CatalogHandler   *CatalogHTTP
	CartHandler      *CartHTTP
	CheckoutHandler  *CheckoutHTTP
	AdminHandler     *AdminHTTP
	AssistantHandler *AssistantHTTP
	JWTSecret        []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewRequestValidator()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := authmw.NewAdminAuth(d.JWTSecret)
	api := e.Group("/api/v1")

	catalog := api.Group("/catalog")
	catalog.GET("/products", d.CatalogHandler.GetProducts)
	catalog.GET("/products/:id", d.CatalogHandler.GetProduct)
	catalog.GET("/featured", d.CatalogHandler.GetFeatured)
	catalog.GET("/categories", d.CatalogHandler.GetCategories)
	catalog.GET("/search", d.CatalogHandler.SearchProducts)

	cart := api.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.PUT("/items/:id", d.CartHandler.SetQuantity)
	cart.DELETE("/items/:id", d.CartHandler.RemoveItem)

	api.POST("/checkout/validate", d.CheckoutHandler.ValidateForm)
	api.POST("/checkout", d.CheckoutHandler.Submit)

	admin := api.Group("/admin")
	admin.POST("/login", d.AdminHandler.Login)
	admin.POST("/logout", d.AdminHandler.Logout)

	products := admin.Group("/products", auth.RequireAdmin)
	products.GET("", d.AdminHandler.ListProducts)
	products.GET("/export", d.AdminHandler.ExportProducts)
	products.POST("", d.AdminHandler.CreateProduct)
	products.PATCH("/:id", d.AdminHandler.PatchProduct)
	products.DELETE("/:id", d.AdminHandler.DeleteProduct)

	e.POST("/api/ai/chat", d.AssistantHandler.Chat, auth.RequireAdmin)
}
