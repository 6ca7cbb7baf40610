// Package cart turns raw client cart lines into priced, grouped quotes.
// Carts live entirely in the client; the server only prices them.
package cart

import (
	"github.com/fenzolabs/fenzo-backend/internal/pricing"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
)

// Line is a single client-held cart entry: a product snapshot plus the
// selected variant and quantity.
type Line struct {
	LineID        string `json:"line_id"`
	Product       models.Product
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
	Quantity      int    `json:"quantity"`
}

// Group is one displayed cart row: all lines sharing product identity and
// variant, collapsed with a shared unit price.
type Group struct {
	Name            string `json:"name"`
	Code            string `json:"code"`
	SelectedSize    string `json:"selected_size"`
	SelectedColor   string `json:"selected_color"`
	Quantity        int    `json:"quantity"`
	UnitPrice       int    `json:"unit_price"`
	BasePrice       int    `json:"base_price"`
	DiscountPercent int    `json:"discount_percent"`
	TotalPrice      int    `json:"total_price"`
	Product         models.Product
}

type groupKey struct {
	name  string
	code  string
	size  string
	color string
}

// Aggregate collapses cart lines into groups keyed by (name, code, size,
// color). Group order follows the first occurrence of each key in the input.
// Unit prices come from the offer resolver, and the group total is always
// unit price times quantity so per-unit rounding never drifts.
func Aggregate(lines []Line, settings *models.Settings) []Group {
	if len(lines) == 0 {
		return []Group{}
	}

	index := make(map[groupKey]int, len(lines))
	groups := make([]Group, 0, len(lines))

	for _, line := range lines {
		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}

		key := groupKey{
			name:  line.Product.Name,
			code:  line.Product.Code,
			size:  line.SelectedSize,
			color: line.SelectedColor,
		}

		if at, ok := index[key]; ok {
			groups[at].Quantity += qty
			groups[at].TotalPrice = groups[at].UnitPrice * groups[at].Quantity
			continue
		}

		quote := pricing.Resolve(&line.Product, settings)
		index[key] = len(groups)
		groups = append(groups, Group{
			Name:            line.Product.Name,
			Code:            line.Product.Code,
			SelectedSize:    line.SelectedSize,
			SelectedColor:   line.SelectedColor,
			Quantity:        qty,
			UnitPrice:       quote.EffectivePrice,
			BasePrice:       line.Product.Price,
			DiscountPercent: quote.DiscountPercent,
			TotalPrice:      quote.EffectivePrice * qty,
			Product:         line.Product,
		})
	}

	return groups
}

// Subtotal sums the group totals.
func Subtotal(groups []Group) int {
	sum := 0
	for _, g := range groups {
		sum += g.TotalPrice
	}
	return sum
}
