package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/narender/vending-machine/common/middleware"
)

// MiddlewareConfig holds configuration for middleware
type MiddlewareConfig struct {
	Logger         *slog.Logger
	EnableOTel     bool
	EnableLogger   bool
	EnableCORS     bool
	EnableRecovery bool
	CORSConfig     cors.Config
}

// DefaultMiddlewareConfig returns default middleware configuration
func DefaultMiddlewareConfig() MiddlewareConfig {
	return MiddlewareConfig{
		Logger:         slog.Default(),
		EnableOTel:     true,
		EnableLogger:   true,
		EnableCORS:     true,
		EnableRecovery: true,
		CORSConfig:     cors.ConfigDefault,
	}
}

// RegisterMiddleware registers the middleware chain. Recovery is innermost so
// a recovered panic still reaches the request logger as an error.
func RegisterMiddleware(app *fiber.App, cfg MiddlewareConfig) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.EnableOTel {
		app.Use(middleware.OtelMiddleware())
	}

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.ContextLoggerMiddleware(cfg.Logger))

	if cfg.EnableCORS {
		app.Use(cors.New(cfg.CORSConfig))
	}

	if cfg.EnableLogger {
		app.Use(middleware.RequestLoggerMiddleware(cfg.Logger))
	}

	if cfg.EnableRecovery {
		app.Use(middleware.RecoverMiddleware(cfg.Logger))
	}
}
