package models

import "time"

// SettingsID is the primary key of the singleton settings row.
const SettingsID = "app"

// Settings is the store-wide configuration document. Exactly one row exists;
// reads always see the full document and writes replace fields atomically.
type Settings struct {
	ID string `gorm:"column:id;primaryKey"`

	GlobalOfferEnabled bool `gorm:"column:global_offer_enabled;not null;default:false"`
	GlobalOfferPercent int  `gorm:"column:global_offer_percent;not null;default:0"`

	DeliveryChargeEnabled bool `gorm:"column:delivery_charge_enabled;not null;default:false"`
	DeliveryCharge        int  `gorm:"column:delivery_charge;not null;default:0"`

	FreeDeliveryEnabled   bool `gorm:"column:free_delivery_enabled;not null;default:false"`
	FreeDeliveryThreshold int  `gorm:"column:free_delivery_threshold;not null;default:0"`

	BkashEnabled bool `gorm:"column:bkash_enabled;not null;default:true"`
	NagadEnabled bool `gorm:"column:nagad_enabled;not null;default:true"`
	CODEnabled   bool `gorm:"column:cod_enabled;not null;default:true"`

	MaintenanceMode    bool   `gorm:"column:maintenance_mode;not null;default:false"`
	MaintenanceMessage string `gorm:"column:maintenance_message;not null;default:''"`

	WhatsAppPrimary   string `gorm:"column:whatsapp_primary;not null;default:''"`
	WhatsAppSecondary string `gorm:"column:whatsapp_secondary;not null;default:''"`
	FacebookPage      string `gorm:"column:facebook_page;not null;default:''"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
