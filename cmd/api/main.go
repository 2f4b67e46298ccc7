package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kwabenaosei/shopdesk-backend/api/routes"
	"github.com/kwabenaosei/shopdesk-backend/internal/cart"
	"github.com/kwabenaosei/shopdesk-backend/internal/catalog"
	"github.com/kwabenaosei/shopdesk-backend/internal/sales"
	"github.com/kwabenaosei/shopdesk-backend/pkg/config"
	"github.com/kwabenaosei/shopdesk-backend/pkg/enums"
	"github.com/kwabenaosei/shopdesk-backend/pkg/logger"
	"github.com/kwabenaosei/shopdesk-backend/pkg/metrics"
)

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

	catalogIndex, err := catalog.NewIndex(catalog.Seed())
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog index", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.NewStore(), catalogIndex)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ledger := sales.NewLedger()
	if cfg.Seed.DemoData {
		sales.SeedLedger(ledger)
		logg.Info(logg.WithField(context.Background(), "entries", ledger.Len()), "demo ledger seeded")
	}

	// Metrics observe only sales committed after boot, not seed data.
	registry := prometheus.NewRegistry()
	salesMetrics := metrics.NewSalesMetrics(registry)
	ledger.Subscribe(func(sale sales.Sale, _ sales.Stats) {
		salesMetrics.ObserveSale(sale.PaymentMethod.String(), sale.Units(), sale.TotalAmount)
	})

	display, err := enums.ParseCurrency(cfg.Currency.Display)
	if err != nil {
		logg.Error(context.Background(), "invalid display currency", err)
		os.Exit(1)
	}

	salesService, err := sales.NewService(sales.ServiceParams{
		Ledger:   ledger,
		Carts:    cartService,
		Currency: display,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, catalogIndex, cartService, salesService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
