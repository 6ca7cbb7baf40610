package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fenzolabs/fenzo-backend/api/responses"
	"github.com/fenzolabs/fenzo-backend/api/validators"
	"github.com/fenzolabs/fenzo-backend/internal/cart"
	checkoutsvc "github.com/fenzolabs/fenzo-backend/internal/checkout"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
)

// ProductResolver loads catalog rows referenced by cart lines. Prices always
// come from the server copy, never from whatever the client cached.
type ProductResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type cartLineRequest struct {
	LineID        string `json:"line_id,omitempty"`
	ProductID     string `json:"product_id" validate:"required,uuid"`
	SelectedSize  string `json:"selected_size,omitempty"`
	SelectedColor string `json:"selected_color,omitempty"`
	Quantity      int    `json:"quantity,omitempty" validate:"omitempty,min=1,max=999"`
}

type cartQuoteRequest struct {
	Lines []cartLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CartQuote prices a client cart under the current store settings.
func CartQuote(resolver ProductResolver, svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if resolver == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload cartQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := resolveCartLines(r.Context(), resolver, payload.Lines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), lines)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

func resolveCartLines(ctx context.Context, resolver ProductResolver, requests []cartLineRequest) ([]cart.Line, error) {
	lines := make([]cart.Line, 0, len(requests))
	for _, req := range requests {
		id, err := uuid.Parse(strings.TrimSpace(req.ProductID))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
		}

		product, err := resolver.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]string{"product_id": req.ProductID})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
		}
		if !product.IsActive {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]string{"product_id": req.ProductID})
		}

		lines = append(lines, cart.Line{
			LineID:        req.LineID,
			Product:       *product,
			SelectedSize:  strings.TrimSpace(req.SelectedSize),
			SelectedColor: strings.TrimSpace(req.SelectedColor),
			Quantity:      req.Quantity,
		})
	}
	return lines, nil
}
