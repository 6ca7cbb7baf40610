package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
)

// Service exposes store settings reads and admin mutations.
type Service interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, input UpdateInput) (*models.Settings, error)
	SetMaintenance(ctx context.Context, input MaintenanceInput) (*models.Settings, error)
}

// UpdateInput holds optional mutation values for the settings document.
// Nil fields are left untouched.
type UpdateInput struct {
	GlobalOfferEnabled    *bool
	GlobalOfferPercent    *int
	DeliveryChargeEnabled *bool
	DeliveryCharge        *int
	FreeDeliveryEnabled   *bool
	FreeDeliveryThreshold *int
	BkashEnabled          *bool
	NagadEnabled          *bool
	CODEnabled            *bool
	WhatsAppPrimary       *string
	WhatsAppSecondary     *string
	FacebookPage          *string
}

// MaintenanceInput toggles storefront maintenance mode.
type MaintenanceInput struct {
	Enabled bool
	Message *string
}

type snapshotPublisher interface {
	Publish(*models.Settings)
}

type service struct {
	repo     *Repository
	snapshot snapshotPublisher
}

// NewService constructs the settings service. The snapshot publisher is
// optional; when present, every successful write refreshes it immediately so
// the storefront does not serve stale rules until the next poll.
func NewService(repo *Repository, snapshot snapshotPublisher) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: repo, snapshot: snapshot}, nil
}

func (s *service) Get(ctx context.Context) (*models.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading settings")
	}
	return current, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*models.Settings, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading settings")
	}

	applyUpdate(current, input)

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving settings")
	}

	s.publish(current)
	return current, nil
}

func (s *service) SetMaintenance(ctx context.Context, input MaintenanceInput) (*models.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading settings")
	}

	current.MaintenanceMode = input.Enabled
	if input.Message != nil {
		current.MaintenanceMessage = strings.TrimSpace(*input.Message)
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving settings")
	}

	s.publish(current)
	return current, nil
}

func (s *service) publish(current *models.Settings) {
	if s.snapshot == nil {
		return
	}
	copied := *current
	s.snapshot.Publish(&copied)
}

func validateUpdate(input UpdateInput) error {
	if p := input.GlobalOfferPercent; p != nil && (*p < 0 || *p >= 100) {
		return pkgerrors.New(pkgerrors.CodeValidation, "global_offer_percent must be in [0,100)")
	}
	if c := input.DeliveryCharge; c != nil && *c < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery_charge must be non-negative")
	}
	if th := input.FreeDeliveryThreshold; th != nil && *th < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "free_delivery_threshold must be non-negative")
	}
	return nil
}

func applyUpdate(current *models.Settings, input UpdateInput) {
	if input.GlobalOfferEnabled != nil {
		current.GlobalOfferEnabled = *input.GlobalOfferEnabled
	}
	if input.GlobalOfferPercent != nil {
		current.GlobalOfferPercent = *input.GlobalOfferPercent
	}
	if input.DeliveryChargeEnabled != nil {
		current.DeliveryChargeEnabled = *input.DeliveryChargeEnabled
	}
	if input.DeliveryCharge != nil {
		current.DeliveryCharge = *input.DeliveryCharge
	}
	if input.FreeDeliveryEnabled != nil {
		current.FreeDeliveryEnabled = *input.FreeDeliveryEnabled
	}
	if input.FreeDeliveryThreshold != nil {
		current.FreeDeliveryThreshold = *input.FreeDeliveryThreshold
	}
	if input.BkashEnabled != nil {
		current.BkashEnabled = *input.BkashEnabled
	}
	if input.NagadEnabled != nil {
		current.NagadEnabled = *input.NagadEnabled
	}
	if input.CODEnabled != nil {
		current.CODEnabled = *input.CODEnabled
	}
	if input.WhatsAppPrimary != nil {
		current.WhatsAppPrimary = strings.TrimSpace(*input.WhatsAppPrimary)
	}
	if input.WhatsAppSecondary != nil {
		current.WhatsAppSecondary = strings.TrimSpace(*input.WhatsAppSecondary)
	}
	if input.FacebookPage != nil {
		current.FacebookPage = strings.TrimSpace(*input.FacebookPage)
	}
}
