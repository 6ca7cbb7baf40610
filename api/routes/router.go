package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fenzolabs/fenzo-backend/api/controllers"
	"github.com/fenzolabs/fenzo-backend/api/middleware"
	authsvc "github.com/fenzolabs/fenzo-backend/internal/auth"
	checkoutsvc "github.com/fenzolabs/fenzo-backend/internal/checkout"
	productsvc "github.com/fenzolabs/fenzo-backend/internal/products"
	settingsvc "github.com/fenzolabs/fenzo-backend/internal/settings"
	"github.com/fenzolabs/fenzo-backend/pkg/auth/session"
	"github.com/fenzolabs/fenzo-backend/pkg/config"
	"github.com/fenzolabs/fenzo-backend/pkg/db"
	"github.com/fenzolabs/fenzo-backend/pkg/enums"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
	"github.com/fenzolabs/fenzo-backend/pkg/metrics"
	"github.com/fenzolabs/fenzo-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps bundles everything the router mounts.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Redis    *redis.Client
	Sessions sessionManager
	Snapshot controllers.SettingsSource

	AuthService     authsvc.Service
	ProductService  productsvc.Service
	ProductResolver controllers.ProductResolver
	SettingsService settingsvc.Service
	CheckoutService checkoutsvc.Service

	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Settings stay readable during maintenance so the storefront can
		// render the notice and contact links.
		r.Get("/settings", controllers.StorefrontSettings(deps.Snapshot, deps.SettingsService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Maintenance(deps.Snapshot, logg))
			r.Get("/products", controllers.StorefrontProducts(deps.ProductService, logg))
			r.Get("/products/{productId}", controllers.StorefrontProductDetail(deps.ProductService, logg))
			r.Post("/cart/quote", controllers.CartQuote(deps.ProductResolver, deps.CheckoutService, logg))
			r.Post("/checkout", controllers.Checkout(deps.ProductResolver, deps.CheckoutService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.JWT, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(deps.ProductService, logg))
				r.Post("/", controllers.AdminCreateProduct(deps.ProductService, logg))
				r.Patch("/{productId}", controllers.AdminUpdateProduct(deps.ProductService, logg))
				r.Delete("/{productId}", controllers.AdminDeleteProduct(deps.ProductService, logg))
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.RequireRole(string(enums.MemberRoleAdmin), logg))
				r.Get("/", controllers.AdminGetSettings(deps.SettingsService, logg))
				r.Put("/", controllers.AdminUpdateSettings(deps.SettingsService, logg))
				r.Put("/maintenance", controllers.AdminSetMaintenance(deps.SettingsService, logg))
			})
		})
	})

	return r
}
