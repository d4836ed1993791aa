package transport

import (
	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/internal/models"
)

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"total_items"`
	checkout.Totals
}

type CheckoutResponse struct {
	Order   *checkout.Record `json:"order"`
	Summary string           `json:"summary"`
}

type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type CategoryInfo struct {
	ID    models.Category `json:"id"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}
