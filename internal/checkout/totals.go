package checkout

import "github.com/Skotchmaster/vape_shop/internal/models"

const (
	ShippingFee           int64 = 300
	FreeShippingThreshold int64 = 5000
)

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

func ComputeTotal(lines []models.CartLine) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.LineTotal()
	}

	var shipping int64
	if subtotal > 0 && subtotal < FreeShippingThreshold {
		shipping = ShippingFee
	}
	return Totals{Subtotal: subtotal, Shipping: shipping, Total: subtotal + shipping}
}
