// Package api boots the storefront HTTP API with observability, stores,
// and the checkout gateway wired.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	checkoutclient "github.com/unikontroll/storefront-api/internal/clients/http/checkout"
	adminsmemory "github.com/unikontroll/storefront-api/internal/domains/admins/adapters/memory"
	adminspostgres "github.com/unikontroll/storefront-api/internal/domains/admins/adapters/persistence/postgres"
	adminsapp "github.com/unikontroll/storefront-api/internal/domains/admins/application"
	adminsdomain "github.com/unikontroll/storefront-api/internal/domains/admins/domain"
	adminports "github.com/unikontroll/storefront-api/internal/domains/admins/ports"
	checkoutgw "github.com/unikontroll/storefront-api/internal/domains/orders/adapters/external/checkout"
	ordersfile "github.com/unikontroll/storefront-api/internal/domains/orders/adapters/file"
	ordersobs "github.com/unikontroll/storefront-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/unikontroll/storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/unikontroll/storefront-api/internal/domains/orders/application"
	ordersports "github.com/unikontroll/storefront-api/internal/domains/orders/ports"
	"github.com/unikontroll/storefront-api/internal/platform/migrations"
	platformobservability "github.com/unikontroll/storefront-api/internal/platform/observability"
	platformpostgres "github.com/unikontroll/storefront-api/internal/platform/postgres"
	"github.com/unikontroll/storefront-api/internal/server"
)

// Run boots the storefront API.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	store, sessions, cleanup, err := buildStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	gateway := buildGateway(cfg, logger)

	coreOrderService := ordersapp.NewService(store, gateway, ordersapp.Config{
		UnitPrice:       cfg.UnitPrice,
		Currency:        cfg.Currency,
		ProductName:     cfg.ProductName,
		ProductImageURL: cfg.ProductImageURL,
		PublicBaseURL:   cfg.PublicBaseURL,
	})
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.domains.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.domains.orders.application")),
	)

	creds, err := adminsdomain.NewCredentials(cfg.AdminUser, cfg.AdminPass)
	if err != nil {
		return err
	}
	adminService := adminsapp.NewService(creds, sessions, cfg.SessionTTL)

	handlers := server.Handlers{
		Storefront: server.NewStorefrontAPI(orderService),
		Admin:      server.NewAdminAPI(adminService, orderService, int(cfg.SessionTTL.Seconds())),
	}
	router := server.NewRouter(handlers, adminService, cfg.StaticDir)
	router.Use(otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildStores selects PostgreSQL when a DSN is configured and falls back
// to the JSON file store plus in-memory sessions otherwise.
func buildStores(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.Store, adminports.SessionStore, func(), error) {
	if cfg.PostgresDSN != "" {
		db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := migrations.Run(db); err != nil {
			return nil, nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("order store configured with postgres")
		return orderspostgres.NewStore(db), adminspostgres.NewSessionStore(db), func() { _ = sqlDB.Close() }, nil
	}

	store, err := ordersfile.New(cfg.DataFile, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("order store configured with data file", slog.String("path", cfg.DataFile))
	return store, adminsmemory.NewSessionStore(), func() {}, nil
}

// buildGateway returns nil when the provider is not configured; checkout
// requests then fail with a payment-unavailable error while the admin
// surface keeps working.
func buildGateway(cfg Config, logger *slog.Logger) ordersports.CheckoutGateway {
	if !cfg.CheckoutConfigured() {
		logger.Warn("checkout provider not configured, checkout requests will be rejected")
		return nil
	}
	client, err := checkoutclient.New(cfg.CheckoutBaseURL, cfg.CheckoutSecretKey, nil)
	if err != nil {
		logger.Warn("failed to build checkout client, checkout requests will be rejected", slog.String("error", err.Error()))
		return nil
	}
	return checkoutgw.NewGateway(client)
}
