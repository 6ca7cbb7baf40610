package controllers

import (
	"net/http"

	"github.com/fenzolabs/fenzo-backend/api/responses"
	"github.com/fenzolabs/fenzo-backend/api/validators"
	settingsvc "github.com/fenzolabs/fenzo-backend/internal/settings"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
)

type updateSettingsRequest struct {
	GlobalOfferEnabled    *bool   `json:"global_offer_enabled,omitempty"`
	GlobalOfferPercent    *int    `json:"global_offer_percent,omitempty" validate:"omitempty,min=0,max=99"`
	DeliveryChargeEnabled *bool   `json:"delivery_charge_enabled,omitempty"`
	DeliveryCharge        *int    `json:"delivery_charge,omitempty" validate:"omitempty,min=0"`
	FreeDeliveryEnabled   *bool   `json:"free_delivery_enabled,omitempty"`
	FreeDeliveryThreshold *int    `json:"free_delivery_threshold,omitempty" validate:"omitempty,min=0"`
	BkashEnabled          *bool   `json:"bkash_enabled,omitempty"`
	NagadEnabled          *bool   `json:"nagad_enabled,omitempty"`
	CODEnabled            *bool   `json:"cod_enabled,omitempty"`
	WhatsAppPrimary       *string `json:"whatsapp_primary,omitempty" validate:"omitempty,max=32"`
	WhatsAppSecondary     *string `json:"whatsapp_secondary,omitempty" validate:"omitempty,max=32"`
	FacebookPage          *string `json:"facebook_page,omitempty" validate:"omitempty,max=300"`
}

type maintenanceRequest struct {
	Enabled bool    `json:"enabled"`
	Message *string `json:"message,omitempty" validate:"omitempty,max=500"`
}

// AdminGetSettings returns the full settings document.
func AdminGetSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		current, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, settingsvc.ToAdmin(current))
	}
}

// AdminUpdateSettings applies a partial settings update.
func AdminUpdateSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var payload updateSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), settingsvc.UpdateInput{
			GlobalOfferEnabled:    payload.GlobalOfferEnabled,
			GlobalOfferPercent:    payload.GlobalOfferPercent,
			DeliveryChargeEnabled: payload.DeliveryChargeEnabled,
			DeliveryCharge:        payload.DeliveryCharge,
			FreeDeliveryEnabled:   payload.FreeDeliveryEnabled,
			FreeDeliveryThreshold: payload.FreeDeliveryThreshold,
			BkashEnabled:          payload.BkashEnabled,
			NagadEnabled:          payload.NagadEnabled,
			CODEnabled:            payload.CODEnabled,
			WhatsAppPrimary:       payload.WhatsAppPrimary,
			WhatsAppSecondary:     payload.WhatsAppSecondary,
			FacebookPage:          payload.FacebookPage,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, settingsvc.ToAdmin(updated))
	}
}

// AdminSetMaintenance toggles storefront maintenance mode.
func AdminSetMaintenance(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var payload maintenanceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.SetMaintenance(r.Context(), settingsvc.MaintenanceInput{
			Enabled: payload.Enabled,
			Message: payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, settingsvc.ToAdmin(updated))
	}
}
