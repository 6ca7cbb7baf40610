package products

import (
	"time"

	"github.com/fenzolabs/fenzo-backend/internal/pricing"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	"github.com/google/uuid"
)

// StorefrontProduct is a catalog product with its resolved pricing attached.
// Every price the storefront shows is derived here, never recomputed by the
// client, so the badge percent and the charged price can't drift apart.
type StorefrontProduct struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Details         string    `json:"details"`
	Price           int       `json:"price"`
	EffectivePrice  int       `json:"effective_price"`
	DiscountPercent int       `json:"discount_percent"`
	Stock           int       `json:"stock"`
	IsFeatured      bool      `json:"is_featured"`
	Images          []string  `json:"images"`
	Sizes           []string  `json:"sizes"`
	Colors          []string  `json:"colors"`
	CreatedAt       time.Time `json:"created_at"`
}

func toStorefront(product models.Product, quote pricing.Quote) StorefrontProduct {
	return StorefrontProduct{
		ID:              product.ID,
		Code:            product.Code,
		Name:            product.Name,
		Slug:            product.Slug,
		Description:     product.Description,
		Details:         product.Details,
		Price:           product.Price,
		EffectivePrice:  quote.EffectivePrice,
		DiscountPercent: quote.DiscountPercent,
		Stock:           product.Stock,
		IsFeatured:      product.IsFeatured,
		Images:          product.Images,
		Sizes:           product.Sizes,
		Colors:          product.Colors,
		CreatedAt:       product.CreatedAt,
	}
}

// AdminListResult is one page of products for the admin table.
type AdminListResult struct {
	Products   []models.Product `json:"products"`
	NextCursor string           `json:"next_cursor,omitempty"`
}
