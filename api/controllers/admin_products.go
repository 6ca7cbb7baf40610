package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fenzolabs/fenzo-backend/api/responses"
	"github.com/fenzolabs/fenzo-backend/api/validators"
	productsvc "github.com/fenzolabs/fenzo-backend/internal/products"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
	"github.com/fenzolabs/fenzo-backend/pkg/pagination"
)

type createProductRequest struct {
	Code           string   `json:"code" validate:"required,max=64"`
	Name           string   `json:"name" validate:"required,max=200"`
	Slug           string   `json:"slug,omitempty" validate:"omitempty,max=200"`
	Description    string   `json:"description,omitempty"`
	Details        string   `json:"details,omitempty"`
	Price          int      `json:"price" validate:"required,min=0"`
	OfferPrice     *int     `json:"offer_price,omitempty" validate:"omitempty,min=0"`
	OfferPercent   *int     `json:"offer_percent,omitempty" validate:"omitempty,min=0,max=99"`
	Stock          int      `json:"stock" validate:"min=0"`
	IsActive       *bool    `json:"is_active,omitempty"`
	IsFeatured     *bool    `json:"is_featured,omitempty"`
	Images         []string `json:"images,omitempty"`
	Sizes          []string `json:"sizes,omitempty"`
	Colors         []string `json:"colors,omitempty"`
	DeliveryCharge *int     `json:"delivery_charge,omitempty" validate:"omitempty,min=0"`
}

type updateProductRequest struct {
	Code           *string   `json:"code,omitempty" validate:"omitempty,max=64"`
	Name           *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Slug           *string   `json:"slug,omitempty" validate:"omitempty,max=200"`
	Description    *string   `json:"description,omitempty"`
	Details        *string   `json:"details,omitempty"`
	Price          *int      `json:"price,omitempty" validate:"omitempty,min=0"`
	OfferPrice     *int      `json:"offer_price,omitempty" validate:"omitempty,min=0"`
	OfferPercent   *int      `json:"offer_percent,omitempty" validate:"omitempty,min=0,max=99"`
	Stock          *int      `json:"stock,omitempty" validate:"omitempty,min=0"`
	IsActive       *bool     `json:"is_active,omitempty"`
	IsFeatured     *bool     `json:"is_featured,omitempty"`
	Images         *[]string `json:"images,omitempty"`
	Sizes          *[]string `json:"sizes,omitempty"`
	Colors         *[]string `json:"colors,omitempty"`
	DeliveryCharge *int      `json:"delivery_charge,omitempty" validate:"omitempty,min=0"`
	ClearOffer     bool      `json:"clear_offer,omitempty"`
}

// AdminListProducts returns one cursor page of the full catalog.
func AdminListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListAdmin(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminCreateProduct inserts a new catalog product.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		isActive := true
		if payload.IsActive != nil {
			isActive = *payload.IsActive
		}
		isFeatured := false
		if payload.IsFeatured != nil {
			isFeatured = *payload.IsFeatured
		}

		product, err := svc.Create(r.Context(), productsvc.CreateInput{
			Code:           strings.TrimSpace(payload.Code),
			Name:           strings.TrimSpace(payload.Name),
			Slug:           strings.TrimSpace(payload.Slug),
			Description:    payload.Description,
			Details:        payload.Details,
			Price:          payload.Price,
			OfferPrice:     payload.OfferPrice,
			OfferPercent:   payload.OfferPercent,
			Stock:          payload.Stock,
			IsActive:       isActive,
			IsFeatured:     isFeatured,
			Images:         payload.Images,
			Sizes:          payload.Sizes,
			Colors:         payload.Colors,
			DeliveryCharge: payload.DeliveryCharge,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial update to one product.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, productsvc.UpdateInput{
			Code:           payload.Code,
			Name:           payload.Name,
			Slug:           payload.Slug,
			Description:    payload.Description,
			Details:        payload.Details,
			Price:          payload.Price,
			OfferPrice:     payload.OfferPrice,
			OfferPercent:   payload.OfferPercent,
			Stock:          payload.Stock,
			IsActive:       payload.IsActive,
			IsFeatured:     payload.IsFeatured,
			Images:         payload.Images,
			Sizes:          payload.Sizes,
			Colors:         payload.Colors,
			DeliveryCharge: payload.DeliveryCharge,
			ClearOffer:     payload.ClearOffer,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes one product.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func productIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "productId"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return id, nil
}
