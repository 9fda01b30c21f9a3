package globals

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/narender/vending-machine/common/config"
	"github.com/narender/vending-machine/common/log"
	"github.com/narender/vending-machine/common/logging"
	"github.com/narender/vending-machine/common/telemetry"
)

var (
	cfg               *config.Config
	logger            *slog.Logger
	telemetryShutdown telemetry.ShutdownFunc
	// once ensures that initialization logic runs exactly once.
	once sync.Once
	err  error
)

// Init loads configuration, then sets up logging and telemetry.
// It runs once; later calls return the first result.
func Init(ctx context.Context) error {
	once.Do(func() {
		cfg, err = config.LoadConfig()
		if err != nil {
			err = fmt.Errorf("failed to load config during init: %w", err)
			return
		}

		setupLogger := logging.SetupLogrus(cfg)

		telemetryShutdown, err = telemetry.InitTelemetry(ctx, cfg, setupLogger)
		if err != nil {
			err = fmt.Errorf("failed to initialize telemetry setup during init: %w", err)
			setupLogger.WithError(err).Error("Telemetry initialization failed")
			return
		}
		if cfg.OtelEnabled {
			logging.EnableOtelHook(setupLogger, cfg.ServiceName)
		}

		// The slog bridge needs the global logger provider, so logging comes after telemetry.
		if initErr := log.Init(cfg); initErr != nil {
			err = fmt.Errorf("failed to initialize logger during init: %w", initErr)
			return
		}
		logger = log.L
		if logger == nil {
			err = fmt.Errorf("log.Init() succeeded but log.L is nil")
		}
	})

	return err
}

// Cfg returns the loaded configuration, panicking if Init hasn't been successfully called.
func Cfg() *config.Config {
	if cfg == nil {
		panic("configuration not initialized: call globals.Init() first and check error")
	}
	return cfg
}

// Logger returns the initialized logger, panicking if Init hasn't been successfully called.
func Logger() *slog.Logger {
	if logger == nil {
		panic("logger not initialized: call globals.Init() first and check error")
	}
	return logger
}

// TelemetryShutdown returns the func flushing telemetry providers. It is a no-op before Init.
func TelemetryShutdown() telemetry.ShutdownFunc {
	if telemetryShutdown == nil {
		return func(context.Context) error { return nil }
	}
	return telemetryShutdown
}
