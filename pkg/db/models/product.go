package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents a catalog listing. Prices are whole currency units
// (the store does not use fractional taka).
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string    `gorm:"column:code;not null;default:''"`
	Name        string    `gorm:"column:name;not null"`
	Slug        string    `gorm:"column:slug;not null;default:''"`
	Description string    `gorm:"column:description;not null;default:''"`
	Details     string    `gorm:"column:details;not null;default:''"`

	Price        int  `gorm:"column:price;not null;default:0"`
	OfferPrice   *int `gorm:"column:offer_price"`
	OfferPercent *int `gorm:"column:offer_percent"`

	Stock           int  `gorm:"column:stock;not null;default:0"`
	IsActive        bool `gorm:"column:is_active;not null;default:true"`
	IsFeatured      bool `gorm:"column:is_featured;not null;default:false"`
	PopularityScore int  `gorm:"column:popularity_score;not null;default:0"`

	Images pq.StringArray `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	Sizes  pq.StringArray `gorm:"column:sizes;type:text[];not null;default:ARRAY[]::text[]"`
	Colors pq.StringArray `gorm:"column:colors;type:text[];not null;default:ARRAY[]::text[]"`

	// Legacy per-product override; the store-wide delivery settings are
	// authoritative and this field is never consulted by the totals path.
	DeliveryCharge *int `gorm:"column:delivery_charge"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
