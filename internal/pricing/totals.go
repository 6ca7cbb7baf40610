package pricing

import "github.com/fenzolabs/fenzo-backend/pkg/db/models"

// Totals is the delivery-and-grand-total breakdown for an order subtotal.
type Totals struct {
	Subtotal                 int  `json:"subtotal"`
	DeliveryCharge           int  `json:"delivery_charge"`
	GrandTotal               int  `json:"grand_total"`
	FreeDeliveryAchieved     bool `json:"free_delivery_achieved"`
	RemainingForFreeDelivery int  `json:"remaining_for_free_delivery"`
}

// Total applies the store-wide delivery rules to an aggregated subtotal.
// Per-product delivery overrides are legacy data and never consulted here;
// the settings document is the single source of delivery truth.
func Total(subtotal int, settings *models.Settings) Totals {
	if subtotal < 0 {
		subtotal = 0
	}

	var (
		chargeEnabled bool
		charge        int
		freeEnabled   bool
		threshold     int
	)
	if settings != nil {
		chargeEnabled = settings.DeliveryChargeEnabled
		charge = clampNonNegative(settings.DeliveryCharge)
		freeEnabled = settings.FreeDeliveryEnabled
		threshold = clampNonNegative(settings.FreeDeliveryThreshold)
	}

	achieved := freeEnabled && threshold > 0 && subtotal >= threshold

	delivery := 0
	if !achieved && chargeEnabled {
		delivery = charge
	}

	remaining := 0
	if freeEnabled && !achieved && threshold > subtotal {
		remaining = threshold - subtotal
	}

	return Totals{
		Subtotal:                 subtotal,
		DeliveryCharge:           delivery,
		GrandTotal:               subtotal + delivery,
		FreeDeliveryAchieved:     achieved,
		RemainingForFreeDelivery: remaining,
	}
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
