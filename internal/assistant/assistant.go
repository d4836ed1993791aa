// Package assistant answers admin chat questions about the catalog.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/internal/filter"
	"github.com/Skotchmaster/vape_shop/internal/models"
)

var ErrEmptyMessage = errors.New("message is empty")

// FailureReply is shown when the responder could not produce an answer.
const FailureReply = "Извините, произошла ошибка. Пожалуйста, попробуйте позже."

type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// CatalogResponder answers from live catalog statistics. It recognises a
// handful of topics by keyword and falls back to an overview.
type CatalogResponder struct {
	Products func() []models.Product
}

func (r CatalogResponder) Respond(ctx context.Context, message string) (string, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return "", ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	products := r.Products()
	switch {
	case containsAny(msg, "цен", "стоим", "price"):
		return priceReply(products), nil
	case containsAny(msg, "доставк", "shipping"):
		return fmt.Sprintf("Доставка стоит %d руб. и бесплатна для заказов от %d руб.",
			checkout.ShippingFee, checkout.FreeShippingThreshold), nil
	case containsAny(msg, "сколько", "категор", "count"):
		return countReply(products), nil
	}
	return countReply(products) + " " + priceReply(products), nil
}

func countReply(products []models.Product) string {
	counts := make(map[models.Category]int, len(models.Categories))
	for _, p := range products {
		counts[p.Category]++
	}

	parts := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		parts = append(parts, fmt.Sprintf("%s: %d", c.Label(), counts[c]))
	}
	return fmt.Sprintf("В каталоге %d товаров (%s).", len(products), strings.Join(parts, ", "))
}

func priceReply(products []models.Product) string {
	if len(products) == 0 {
		return "Каталог пуст."
	}
	lo, hi := filter.PriceBounds(products)
	return fmt.Sprintf("Цены от %d до %d руб.", lo, hi)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
