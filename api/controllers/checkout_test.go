package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fenzolabs/fenzo-backend/internal/cart"
	checkoutsvc "github.com/fenzolabs/fenzo-backend/internal/checkout"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
)

type stubResolver struct {
	products map[uuid.UUID]*models.Product
}

func (s stubResolver) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCheckoutService struct {
	quote    *checkoutsvc.QuoteResult
	checkout *checkoutsvc.CheckoutResult
	err      error

	lastLines []cart.Line
	lastInput checkoutsvc.CheckoutInput
}

func (s *stubCheckoutService) Quote(ctx context.Context, lines []cart.Line) (*checkoutsvc.QuoteResult, error) {
	s.lastLines = lines
	return s.quote, s.err
}

func (s *stubCheckoutService) Checkout(ctx context.Context, input checkoutsvc.CheckoutInput) (*checkoutsvc.CheckoutResult, error) {
	s.lastInput = input
	return s.checkout, s.err
}

func TestCartQuoteResolvesProducts(t *testing.T) {
	productID := uuid.New()
	resolver := stubResolver{products: map[uuid.UUID]*models.Product{
		productID: {ID: productID, Name: "Classic Tee", Price: 99, IsActive: true},
	}}
	svc := &stubCheckoutService{quote: &checkoutsvc.QuoteResult{}}
	handler := CartQuote(resolver, svc, nil)

	body := `{"lines":[{"product_id":"` + productID.String() + `","selected_size":"M","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(svc.lastLines) != 1 {
		t.Fatalf("expected 1 resolved line got %d", len(svc.lastLines))
	}
	if svc.lastLines[0].Product.Price != 99 {
		t.Fatalf("expected server price, got %d", svc.lastLines[0].Product.Price)
	}
	if svc.lastLines[0].SelectedSize != "M" || svc.lastLines[0].Quantity != 2 {
		t.Fatalf("unexpected line: %+v", svc.lastLines[0])
	}
}

func TestCartQuoteUnknownProduct(t *testing.T) {
	resolver := stubResolver{products: map[uuid.UUID]*models.Product{}}
	handler := CartQuote(resolver, &stubCheckoutService{}, nil)

	body := `{"lines":[{"product_id":"` + uuid.NewString() + `","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartQuoteHidesInactiveProducts(t *testing.T) {
	productID := uuid.New()
	resolver := stubResolver{products: map[uuid.UUID]*models.Product{
		productID: {ID: productID, Name: "Retired Tee", Price: 99, IsActive: false},
	}}
	handler := CartQuote(resolver, &stubCheckoutService{}, nil)

	body := `{"lines":[{"product_id":"` + productID.String() + `","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartQuoteRejectsEmptyCart(t *testing.T) {
	handler := CartQuote(stubResolver{}, &stubCheckoutService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader(`{"lines":[]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutSuccess(t *testing.T) {
	productID := uuid.New()
	resolver := stubResolver{products: map[uuid.UUID]*models.Product{
		productID: {ID: productID, Name: "Classic Tee", Price: 99, IsActive: true},
	}}
	svc := &stubCheckoutService{checkout: &checkoutsvc.CheckoutResult{
		Message:    "*New Order from Fenzo*",
		HandoffURL: "https://wa.me/8801700000000?text=hello",
	}}
	handler := Checkout(resolver, svc, nil)

	body := `{"lines":[{"product_id":"` + productID.String() + `","quantity":1}],` +
		`"name":"Rahim","phone":"01700000000","address":"Dhaka","payment_method":"cod"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastInput.Name != "Rahim" || svc.lastInput.PaymentMethod != "cod" {
		t.Fatalf("unexpected input: %+v", svc.lastInput)
	}

	var envelope struct {
		Data checkoutsvc.CheckoutResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(envelope.Data.HandoffURL, "wa.me") {
		t.Fatalf("unexpected handoff url: %s", envelope.Data.HandoffURL)
	}
}

func TestCheckoutRejectsMissingCustomerInfo(t *testing.T) {
	productID := uuid.New()
	resolver := stubResolver{products: map[uuid.UUID]*models.Product{
		productID: {ID: productID, Name: "Classic Tee", Price: 99, IsActive: true},
	}}
	handler := Checkout(resolver, &stubCheckoutService{}, nil)

	body := `{"lines":[{"product_id":"` + productID.String() + `","quantity":1}],` +
		`"name":"","phone":"","address":"","payment_method":"cod"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
