// Package checkout prices a client cart and produces the WhatsApp hand-off.
// Orders are never persisted; the hand-off message is the order.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/fenzolabs/fenzo-backend/internal/cart"
	"github.com/fenzolabs/fenzo-backend/internal/pricing"
	"github.com/fenzolabs/fenzo-backend/pkg/config"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	"github.com/fenzolabs/fenzo-backend/pkg/enums"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
)

// Service exposes cart quoting and the checkout hand-off.
type Service interface {
	Quote(ctx context.Context, lines []cart.Line) (*QuoteResult, error)
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}

// QuoteResult is the priced view of a client cart.
type QuoteResult struct {
	Groups         []cart.Group    `json:"groups"`
	Totals         pricing.Totals  `json:"totals"`
	PaymentMethods []PaymentOption `json:"payment_methods"`
}

// PaymentOption is one enabled payment method offered at checkout.
type PaymentOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CheckoutInput carries the cart plus buyer details.
type CheckoutInput struct {
	Lines         []cart.Line
	Name          string
	Phone         string
	Address       string
	PaymentMethod string
}

// CheckoutResult is the hand-off payload the storefront opens in WhatsApp.
type CheckoutResult struct {
	Message    string         `json:"message"`
	HandoffURL string         `json:"handoff_url"`
	Totals     pricing.Totals `json:"totals"`
}

type settingsSource interface {
	Current() *models.Settings
}

type handoffRecorder interface {
	IncCheckoutHandoff(paymentMethod string)
}

type service struct {
	settings settingsSource
	store    config.StoreConfig
	metrics  handoffRecorder
}

// NewService constructs the checkout service. Metrics may be nil.
func NewService(settings settingsSource, store config.StoreConfig, metrics handoffRecorder) (Service, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings source required")
	}
	return &service{settings: settings, store: store, metrics: metrics}, nil
}

// Quote aggregates and prices the cart under current settings.
func (s *service) Quote(ctx context.Context, lines []cart.Line) (*QuoteResult, error) {
	settings := s.settings.Current()

	groups := cart.Aggregate(lines, settings)
	totals := pricing.Total(cart.Subtotal(groups), settings)

	return &QuoteResult{
		Groups:         groups,
		Totals:         totals,
		PaymentMethods: paymentOptions(settings),
	}, nil
}

// Checkout validates buyer details, prices the cart, and builds the WhatsApp
// hand-off message and URL.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	if len(input.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	address := strings.TrimSpace(input.Address)
	if name == "" || phone == "" || address == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name, phone, and address are required")
	}

	method, err := enums.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	settings := s.settings.Current()
	if !paymentMethodEnabled(method, settings) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method is not available")
	}

	groups := cart.Aggregate(input.Lines, settings)
	totals := pricing.Total(cart.Subtotal(groups), settings)

	message := BuildOrderMessage(groups, totals, CustomerInfo{
		Name:          name,
		Phone:         phone,
		Address:       address,
		PaymentMethod: method.Label(),
	}, settings)

	number := s.whatsAppNumber(settings)
	if number == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "no WhatsApp number configured")
	}

	if s.metrics != nil {
		s.metrics.IncCheckoutHandoff(method.String())
	}

	return &CheckoutResult{
		Message:    message,
		HandoffURL: HandoffURL(number, message),
		Totals:     totals,
	}, nil
}

func (s *service) whatsAppNumber(settings *models.Settings) string {
	if settings != nil && settings.WhatsAppPrimary != "" {
		return settings.WhatsAppPrimary
	}
	if settings != nil && settings.WhatsAppSecondary != "" {
		return settings.WhatsAppSecondary
	}
	return s.store.WhatsAppPrimary
}

func paymentOptions(settings *models.Settings) []PaymentOption {
	options := []PaymentOption{}
	if settings == nil {
		return options
	}
	if settings.BkashEnabled {
		options = append(options, PaymentOption{ID: enums.PaymentMethodBkash.String(), Label: enums.PaymentMethodBkash.Label()})
	}
	if settings.NagadEnabled {
		options = append(options, PaymentOption{ID: enums.PaymentMethodNagad.String(), Label: enums.PaymentMethodNagad.Label()})
	}
	if settings.CODEnabled {
		options = append(options, PaymentOption{ID: enums.PaymentMethodCOD.String(), Label: enums.PaymentMethodCOD.Label()})
	}
	return options
}

func paymentMethodEnabled(method enums.PaymentMethod, settings *models.Settings) bool {
	if settings == nil {
		return false
	}
	switch method {
	case enums.PaymentMethodBkash:
		return settings.BkashEnabled
	case enums.PaymentMethodNagad:
		return settings.NagadEnabled
	case enums.PaymentMethodCOD:
		return settings.CODEnabled
	default:
		return false
	}
}
