package admin

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/Skotchmaster/vape_shop/internal/models"
)

type productRow struct {
	ID            string `csv:"id"`
	Name          string `csv:"name"`
	Category      string `csv:"category"`
	CategoryLabel string `csv:"category_label"`
	Price         int64  `csv:"price"`
	Variant       string `csv:"variant"`
	Image         string `csv:"image"`
	Description   string `csv:"description"`
}

// ExportCSV writes one row per product, in catalog order, with a header.
func ExportCSV(w io.Writer, products []models.Product) error {
	rows := make([]*productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &productRow{
			ID:            p.ID,
			Name:          p.Name,
			Category:      string(p.Category),
			CategoryLabel: p.Category.Label(),
			Price:         p.Price,
			Variant:       p.Variant,
			Image:         p.Image,
			Description:   p.Description,
		})
	}
	return gocsv.Marshal(rows, w)
}
