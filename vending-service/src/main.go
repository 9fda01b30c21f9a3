package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/narender/vending-machine/common/db"
	"github.com/narender/vending-machine/common/globals"
	commonhttp "github.com/narender/vending-machine/common/http"
	"github.com/narender/vending-machine/common/lifecycle"
	"github.com/narender/vending-machine/common/telemetry"
	"github.com/narender/vending-machine/common/telemetry/metric"
	"github.com/narender/vending-machine/vending-service/src/handlers"
	"github.com/narender/vending-machine/vending-service/src/repositories"
	"github.com/narender/vending-machine/vending-service/src/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vending-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// --- Configuration, Logging & Telemetry ---
	if err := globals.Init(ctx); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	cfg := globals.Cfg()
	logger := globals.Logger()

	// --- Catalog, Repository and Service ---
	catalog, err := repositories.LoadCatalog(ctx, db.NewFileDatabase(cfg.CatalogFilePath, logger), logger)
	if err != nil {
		logger.Error("Failed to load catalog", slog.Any("error", err))
		return err
	}
	repo := repositories.NewMachineRepository(catalog, logger)

	vendingMetrics, err := metric.NewVendingMetrics(telemetry.GetMeter(metric.VendingInstrumentationName))
	if err != nil {
		return err
	}
	service := services.NewVendingService(repo, vendingMetrics, logger)

	stockGauge, err := vendingMetrics.RegisterProductStockGauge(service.StockLevels)
	if err != nil {
		logger.Warn("Product stock gauge unavailable", slog.Any("error", err))
	} else {
		defer func() { _ = stockGauge.Unregister() }()
	}

	handler := handlers.NewVendingHandler(service, logger)
	logger.Debug("Vending service and handler initialized")

	// --- Fiber App Setup ---
	appCfg := commonhttp.DefaultAppConfig()
	appCfg.Name = cfg.ServiceName
	appCfg.Logger = logger
	app := commonhttp.NewApp(appCfg)

	handlers.SetupRoutes(app, handler)
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
		logger.Info("Serving static UI", slog.String("dir", cfg.StaticDir))
	}
	logger.Info("All routes registered successfully")

	// --- Server Startup ---
	addr := fmt.Sprintf(":%s", cfg.VendingServicePort)
	listenErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting to listen", slog.String("address", addr))
		listenErr <- app.Listen(addr)
	}()

	shutdownCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := <-listenErr; err != nil {
			logger.Error("Server listener failed", slog.Any("error", err))
			cancel()
		}
	}()

	return lifecycle.WaitForGracefulShutdown(shutdownCtx, cfg,
		&lifecycle.FiberShutdownAdapter{App: app},
		globals.TelemetryShutdown())
}
