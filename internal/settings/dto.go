package settings

import (
	"time"

	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
)

// PublicSettings is the storefront view of the settings document. It carries
// everything the client needs to render prices, delivery hints, and contact
// links without exposing admin-only fields.
type PublicSettings struct {
	GlobalOfferEnabled bool `json:"global_offer_enabled"`
	GlobalOfferPercent int  `json:"global_offer_percent"`

	DeliveryChargeEnabled bool `json:"delivery_charge_enabled"`
	DeliveryCharge        int  `json:"delivery_charge"`
	FreeDeliveryEnabled   bool `json:"free_delivery_enabled"`
	FreeDeliveryThreshold int  `json:"free_delivery_threshold"`

	BkashEnabled bool `json:"bkash_enabled"`
	NagadEnabled bool `json:"nagad_enabled"`
	CODEnabled   bool `json:"cod_enabled"`

	MaintenanceMode    bool   `json:"maintenance_mode"`
	MaintenanceMessage string `json:"maintenance_message"`

	WhatsAppPrimary string `json:"whatsapp_primary"`
	FacebookPage    string `json:"facebook_page"`
}

// AdminSettings is the full settings document shown in the admin panel.
type AdminSettings struct {
	PublicSettings

	WhatsAppSecondary string    `json:"whatsapp_secondary"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToPublic maps the persistence model to its storefront DTO.
func ToPublic(s *models.Settings) PublicSettings {
	if s == nil {
		return PublicSettings{}
	}
	return PublicSettings{
		GlobalOfferEnabled:    s.GlobalOfferEnabled,
		GlobalOfferPercent:    s.GlobalOfferPercent,
		DeliveryChargeEnabled: s.DeliveryChargeEnabled,
		DeliveryCharge:        s.DeliveryCharge,
		FreeDeliveryEnabled:   s.FreeDeliveryEnabled,
		FreeDeliveryThreshold: s.FreeDeliveryThreshold,
		BkashEnabled:          s.BkashEnabled,
		NagadEnabled:          s.NagadEnabled,
		CODEnabled:            s.CODEnabled,
		MaintenanceMode:       s.MaintenanceMode,
		MaintenanceMessage:    s.MaintenanceMessage,
		WhatsAppPrimary:       s.WhatsAppPrimary,
		FacebookPage:          s.FacebookPage,
	}
}

// ToAdmin maps the persistence model to its admin DTO.
func ToAdmin(s *models.Settings) AdminSettings {
	if s == nil {
		return AdminSettings{}
	}
	return AdminSettings{
		PublicSettings:    ToPublic(s),
		WhatsAppSecondary: s.WhatsAppSecondary,
		UpdatedAt:         s.UpdatedAt,
	}
}
