// Package pricing holds the offer-resolution and totals rules shared by every
// surface that displays a price. Listing cards, product detail, cart quotes,
// and the checkout hand-off all price through here so a product can never show
// one price and charge another.
package pricing

import (
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quote is the resolver output for a single product.
type Quote struct {
	EffectivePrice  int `json:"effective_price"`
	DiscountPercent int `json:"discount_percent"`
}

// Resolve computes the effective unit price and displayed discount percent for
// a product under the current store settings.
//
// Exactly one rule applies, highest first:
//  1. An absolute offer price below the base price.
//  2. A per-product percent discount.
//  3. The store-wide global offer percent, when enabled.
//  4. No discount.
//
// Rules never combine. A base price of zero or less short-circuits to rule 4
// so nothing divides by zero.
func Resolve(product *models.Product, settings *models.Settings) Quote {
	if product == nil {
		return Quote{}
	}

	price := product.Price
	if price <= 0 {
		return Quote{EffectivePrice: 0, DiscountPercent: 0}
	}

	if offer := intValue(product.OfferPrice); offer > 0 && offer < price {
		pct := decimal.NewFromInt(int64(price - offer)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(price)))
		return Quote{
			EffectivePrice:  offer,
			DiscountPercent: roundHalfUp(pct),
		}
	}

	if pct := intValue(product.OfferPercent); pct > 0 && pct < 100 {
		return Quote{
			EffectivePrice:  applyPercent(price, pct),
			DiscountPercent: pct,
		}
	}

	if settings != nil && settings.GlobalOfferEnabled {
		if pct := settings.GlobalOfferPercent; pct > 0 && pct < 100 {
			return Quote{
				EffectivePrice:  applyPercent(price, pct),
				DiscountPercent: pct,
			}
		}
	}

	return Quote{EffectivePrice: price, DiscountPercent: 0}
}

func applyPercent(price, pct int) int {
	effective := decimal.NewFromInt(int64(price)).
		Mul(decimal.NewFromInt(int64(100 - pct))).
		Div(hundred)
	return roundHalfUp(effective)
}

// roundHalfUp rounds to the nearest whole currency unit. Inputs here are
// always non-negative, so decimal's round-half-away-from-zero is half-up.
func roundHalfUp(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
