package products

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fenzolabs/fenzo-backend/internal/pricing"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Service exposes storefront reads and admin product management.
type Service interface {
	ListStorefront(ctx context.Context, input StorefrontListInput) ([]StorefrontProduct, error)
	GetStorefront(ctx context.Context, idOrSlug string) (*StorefrontProduct, error)
	Create(ctx context.Context, input CreateInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAdmin(ctx context.Context, params pagination.Params) (*AdminListResult, error)
}

// StorefrontListInput filters the public catalog listing.
type StorefrontListInput struct {
	Query        string
	FeaturedOnly bool
}

// CreateInput holds the validated payload to create a product.
type CreateInput struct {
	Code           string
	Name           string
	Slug           string
	Description    string
	Details        string
	Price          int
	OfferPrice     *int
	OfferPercent   *int
	Stock          int
	IsActive       bool
	IsFeatured     bool
	Images         []string
	Sizes          []string
	Colors         []string
	DeliveryCharge *int
}

// UpdateInput holds optional mutation values for a product. Nil fields are
// left untouched.
type UpdateInput struct {
	Code           *string
	Name           *string
	Slug           *string
	Description    *string
	Details        *string
	Price          *int
	OfferPrice     *int
	OfferPercent   *int
	Stock          *int
	IsActive       *bool
	IsFeatured     *bool
	Images         *[]string
	Sizes          *[]string
	Colors         *[]string
	DeliveryCharge *int
	ClearOffer     bool
}

type settingsSource interface {
	Current() *models.Settings
}

type service struct {
	repo     *Repository
	settings settingsSource
}

// NewService constructs the product service. The settings source supplies the
// latest store-wide rules used to price every storefront read.
func NewService(repo *Repository, settings settingsSource) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings source required")
	}
	return &service{repo: repo, settings: settings}, nil
}

// ListStorefront returns the active catalog with pricing resolved, optionally
// filtered to featured products and by a case-insensitive substring match on
// name and code.
func (s *service) ListStorefront(ctx context.Context, input StorefrontListInput) ([]StorefrontProduct, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}

	settings := s.settings.Current()
	query := strings.ToLower(strings.TrimSpace(input.Query))

	out := make([]StorefrontProduct, 0, len(list))
	for _, product := range list {
		if input.FeaturedOnly && !product.IsFeatured {
			continue
		}
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		out = append(out, toStorefront(product, pricing.Resolve(&product, settings)))
	}
	return out, nil
}

// GetStorefront loads one active product by UUID or slug, pricing included.
func (s *service) GetStorefront(ctx context.Context, idOrSlug string) (*StorefrontProduct, error) {
	idOrSlug = strings.TrimSpace(idOrSlug)
	if idOrSlug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var (
		product *models.Product
		err     error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		product, err = s.repo.FindByID(ctx, id)
	} else {
		product, err = s.repo.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	dto := toStorefront(*product, pricing.Resolve(product, s.settings.Current()))
	return &dto, nil
}

// Create validates and inserts a new product.
func (s *service) Create(ctx context.Context, input CreateInput) (*models.Product, error) {
	if err := validatePricing(input.Price, input.OfferPrice, input.OfferPercent); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "code is required")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must be non-negative")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}

	product := &models.Product{
		Code:           code,
		Name:           name,
		Slug:           slug,
		Description:    input.Description,
		Details:        input.Details,
		Price:          input.Price,
		OfferPrice:     input.OfferPrice,
		OfferPercent:   input.OfferPercent,
		Stock:          input.Stock,
		IsActive:       input.IsActive,
		IsFeatured:     input.IsFeatured,
		Images:         pq.StringArray(input.Images),
		Sizes:          pq.StringArray(input.Sizes),
		Colors:         pq.StringArray(input.Colors),
		DeliveryCharge: input.DeliveryCharge,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "creating product")
	}
	return created, nil
}

// Update applies a partial mutation to an existing product.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	applyUpdate(product, input)

	if err := validatePricing(product.Price, product.OfferPrice, product.OfferPercent); err != nil {
		return nil, err
	}
	if product.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must be non-negative")
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	return updated, nil
}

// Delete removes a product permanently.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	return nil
}

// ListAdmin returns a cursor page of all products, active or not.
func (s *service) ListAdmin(ctx context.Context, params pagination.Params) (*AdminListResult, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page, err := s.repo.ListPage(ctx, cursor, limit+1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}

	result := &AdminListResult{Products: page}
	if len(page) > limit {
		result.Products = page[:limit]
		last := result.Products[limit-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return result, nil
}

func matchesQuery(product models.Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Code), query) ||
		strings.Contains(strings.ToLower(product.Description), query)
}

func validatePricing(price int, offerPrice, offerPercent *int) error {
	if price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if offerPrice != nil && *offerPrice < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "offer_price must be non-negative")
	}
	if offerPercent != nil && (*offerPercent < 0 || *offerPercent >= 100) {
		return pkgerrors.New(pkgerrors.CodeValidation, "offer_percent must be in [0,100)")
	}
	return nil
}

func applyUpdate(product *models.Product, input UpdateInput) {
	if input.Code != nil {
		product.Code = strings.TrimSpace(*input.Code)
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Slug != nil {
		product.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Details != nil {
		product.Details = *input.Details
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ClearOffer {
		product.OfferPrice = nil
		product.OfferPercent = nil
	}
	if input.OfferPrice != nil {
		product.OfferPrice = input.OfferPrice
	}
	if input.OfferPercent != nil {
		product.OfferPercent = input.OfferPercent
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.Images != nil {
		product.Images = pq.StringArray(*input.Images)
	}
	if input.Sizes != nil {
		product.Sizes = pq.StringArray(*input.Sizes)
	}
	if input.Colors != nil {
		product.Colors = pq.StringArray(*input.Colors)
	}
	if input.DeliveryCharge != nil {
		product.DeliveryCharge = input.DeliveryCharge
	}
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a product name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
