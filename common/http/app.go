package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/vending-machine/common/middleware"
)

// AppConfig holds configuration for the Fiber app
type AppConfig struct {
	Name              string
	Logger            *slog.Logger
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	BodyLimit         int
	DisableStartupLog bool
	MiddlewareConfig  MiddlewareConfig
}

// DefaultAppConfig returns default app configuration
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Name:             "vending-service",
		Logger:           slog.Default(),
		ReadTimeout:      10 * time.Second,
		WriteTimeout:     10 * time.Second,
		IdleTimeout:      60 * time.Second,
		BodyLimit:        64 * 1024,
		MiddlewareConfig: DefaultMiddlewareConfig(),
	}
}

// NewApp creates a Fiber app with the shared error handler and middleware chain.
func NewApp(cfg AppConfig) *fiber.App {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: cfg.DisableStartupLog,
		ErrorHandler:          middleware.ErrorHandler(cfg.Logger),
	})

	cfg.MiddlewareConfig.Logger = cfg.Logger
	RegisterMiddleware(app, cfg.MiddlewareConfig)

	return app
}
