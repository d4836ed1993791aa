// Package filter narrows a product list by category, text and price.
package filter

import (
	"strings"

	"github.com/Skotchmaster/vape_shop/internal/models"
)

// Criteria is one combination of storefront filters. Zero values disable
// the matching condition; nil price bounds are open.
type Criteria struct {
	Category models.Category
	Query    string
	PriceMin *int64
	PriceMax *int64
}

// WithDefaults fills missing price bounds from the catalog's own range.
func (c Criteria) WithDefaults(min, max int64) Criteria {
	if c.PriceMin == nil {
		v := min
		c.PriceMin = &v
	}
	if c.PriceMax == nil {
		v := max
		c.PriceMax = &v
	}
	return c
}

func (c Criteria) Match(p models.Product) bool {
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if q := strings.ToLower(c.Query); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if c.PriceMin != nil && p.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && p.Price > *c.PriceMax {
		return false
	}
	return true
}

// Apply keeps the products matching every condition, in input order.
func Apply(products []models.Product, c Criteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// PriceBounds is the lowest and highest price in the list, or (0, 0) when
// the list is empty.
func PriceBounds(products []models.Product) (min, max int64) {
	if len(products) == 0 {
		return 0, 0
	}
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// AdminMatch is the admin list search: name or id substring, any case.
func AdminMatch(products []models.Product, category models.Category, query string) []models.Product {
	q := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.ID), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
