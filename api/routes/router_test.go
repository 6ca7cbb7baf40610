package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	authsvc "github.com/fenzolabs/fenzo-backend/internal/auth"
	"github.com/fenzolabs/fenzo-backend/internal/cart"
	checkoutsvc "github.com/fenzolabs/fenzo-backend/internal/checkout"
	productsvc "github.com/fenzolabs/fenzo-backend/internal/products"
	settingsvc "github.com/fenzolabs/fenzo-backend/internal/settings"
	"github.com/fenzolabs/fenzo-backend/pkg/config"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionManager struct{}

func (stubSessionManager) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

func (stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	return "", "", nil
}

func (stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	return nil
}

type stubSnapshot struct {
	settings *models.Settings
}

func (s stubSnapshot) Current() *models.Settings {
	return s.settings
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
}

func (stubAuthService) Refresh(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.LoginResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubProductService struct{}

func (stubProductService) ListStorefront(ctx context.Context, input productsvc.StorefrontListInput) ([]productsvc.StorefrontProduct, error) {
	return []productsvc.StorefrontProduct{}, nil
}

func (stubProductService) GetStorefront(ctx context.Context, idOrSlug string) (*productsvc.StorefrontProduct, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (stubProductService) Create(ctx context.Context, input productsvc.CreateInput) (*models.Product, error) {
	return nil, nil
}

func (stubProductService) Update(ctx context.Context, id uuid.UUID, input productsvc.UpdateInput) (*models.Product, error) {
	return nil, nil
}

func (stubProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (stubProductService) ListAdmin(ctx context.Context, params pagination.Params) (*productsvc.AdminListResult, error) {
	return &productsvc.AdminListResult{}, nil
}

type stubResolver struct{}

func (stubResolver) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubSettingsService struct{}

func (stubSettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return &models.Settings{ID: models.SettingsID}, nil
}

func (stubSettingsService) Update(ctx context.Context, input settingsvc.UpdateInput) (*models.Settings, error) {
	return &models.Settings{ID: models.SettingsID}, nil
}

func (stubSettingsService) SetMaintenance(ctx context.Context, input settingsvc.MaintenanceInput) (*models.Settings, error) {
	return &models.Settings{ID: models.SettingsID}, nil
}

type stubCheckoutService struct{}

func (stubCheckoutService) Quote(ctx context.Context, lines []cart.Line) (*checkoutsvc.QuoteResult, error) {
	return &checkoutsvc.QuoteResult{}, nil
}

func (stubCheckoutService) Checkout(ctx context.Context, input checkoutsvc.CheckoutInput) (*checkoutsvc.CheckoutResult, error) {
	return &checkoutsvc.CheckoutResult{}, nil
}

func newTestRouter(t *testing.T, snapshot stubSnapshot) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT = config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10}

	return NewRouter(Deps{
		Config:          cfg,
		DB:              stubPinger{},
		Sessions:        stubSessionManager{},
		Snapshot:        snapshot,
		AuthService:     stubAuthService{},
		ProductService:  stubProductService{},
		ProductResolver: stubResolver{},
		SettingsService: stubSettingsService{},
		CheckoutService: stubCheckoutService{},
		Gatherer:        prometheus.NewRegistry(),
	})
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t, stubSnapshot{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if resp.Header().Get("X-Fenzo-Env") != "test" {
		t.Fatalf("missing env header")
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := newTestRouter(t, stubSnapshot{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterStorefrontProducts(t *testing.T) {
	router := newTestRouter(t, stubSnapshot{settings: &models.Settings{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterMaintenanceGatesStorefront(t *testing.T) {
	router := newTestRouter(t, stubSnapshot{settings: &models.Settings{
		MaintenanceMode:    true,
		MaintenanceMessage: "closed for restock",
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}

	// Settings stay reachable so the client can show the notice.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected settings 200 got %d", resp.Code)
	}
}

func TestRouterAdminRequiresAuth(t *testing.T) {
	router := newTestRouter(t, stubSnapshot{})

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/v1/products/"},
		{http.MethodPost, "/api/admin/v1/products/"},
		{http.MethodGet, "/api/admin/v1/settings/"},
	} {
		req := httptest.NewRequest(target.method, target.path, strings.NewReader(`{}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 got %d", target.method, target.path, resp.Code)
		}
	}
}

func TestRouterLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t, stubSnapshot{})

	body := `{"email":"admin@fenzo.test","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
