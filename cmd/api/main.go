package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/fenzolabs/fenzo-backend/api/routes"
	"github.com/fenzolabs/fenzo-backend/internal/auth"
	"github.com/fenzolabs/fenzo-backend/internal/checkout"
	"github.com/fenzolabs/fenzo-backend/internal/products"
	"github.com/fenzolabs/fenzo-backend/internal/settings"
	"github.com/fenzolabs/fenzo-backend/internal/users"
	"github.com/fenzolabs/fenzo-backend/pkg/auth/session"
	"github.com/fenzolabs/fenzo-backend/pkg/config"
	"github.com/fenzolabs/fenzo-backend/pkg/db"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
	"github.com/fenzolabs/fenzo-backend/pkg/metrics"
	"github.com/fenzolabs/fenzo-backend/pkg/migrate"
	"github.com/fenzolabs/fenzo-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	settingsRepo := settings.NewRepository(dbClient.DB())
	snapshot, err := settings.NewSnapshot(settingsRepo, logg, cfg.Settings.RefreshInterval)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings snapshot", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(settingsRepo, snapshot)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	productsRepo := products.NewRepository(dbClient.DB())
	productService, err := products.NewService(productsRepo, snapshot)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	checkoutService, err := checkout.NewService(snapshot, cfg.Store, httpMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := snapshot.Run(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(rootCtx, "settings snapshot refresher stopped", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(rootCtx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			DB:              dbClient,
			Redis:           redisClient,
			Sessions:        sessionManager,
			Snapshot:        snapshot,
			AuthService:     authService,
			ProductService:  productService,
			ProductResolver: productsRepo,
			SettingsService: settingsService,
			CheckoutService: checkoutService,
			HTTPMetrics:     httpMetrics,
			Gatherer:        registry,
		}),
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			cleanup(ctx, logg, dbClient, redisClient)
			os.Exit(1)
		}
	case <-rootCtx.Done():
		logg.Info(ctx, "shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	cleanup(ctx, logg, dbClient, redisClient)
	logg.Info(ctx, "api server stopped")
}

func cleanup(ctx context.Context, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) {
	var errs error
	if dbClient != nil {
		errs = multierr.Append(errs, dbClient.Close())
	}
	if redisClient != nil {
		errs = multierr.Append(errs, redisClient.Close())
	}
	if errs != nil {
		logg.Error(ctx, "error closing resources", errs)
	}
}
