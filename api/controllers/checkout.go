package controllers

import (
	"net/http"

	"github.com/fenzolabs/fenzo-backend/api/responses"
	"github.com/fenzolabs/fenzo-backend/api/validators"
	checkoutsvc "github.com/fenzolabs/fenzo-backend/internal/checkout"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
)

type checkoutRequest struct {
	Lines         []cartLineRequest `json:"lines" validate:"required,min=1,dive"`
	Name          string            `json:"name" validate:"required,max=120"`
	Phone         string            `json:"phone" validate:"required,max=32"`
	Address       string            `json:"address" validate:"required,max=500"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
}

// Checkout prices the cart and returns the WhatsApp hand-off payload.
func Checkout(resolver ProductResolver, svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if resolver == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := resolveCartLines(r.Context(), resolver, payload.Lines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Checkout(r.Context(), checkoutsvc.CheckoutInput{
			Lines:         lines,
			Name:          validators.SanitizeString(payload.Name, 120),
			Phone:         validators.SanitizeString(payload.Phone, 32),
			Address:       validators.SanitizeString(payload.Address, 500),
			PaymentMethod: payload.PaymentMethod,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
