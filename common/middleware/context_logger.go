package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.opentelemetry.io/otel/trace"
)

const loggerLocalsKey = "request_logger"

// ContextLoggerMiddleware stores a per-request logger carrying the request id
// and, when a span is active, its trace and span ids.
func ContextLoggerMiddleware(baseLogger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestLogger := baseLogger

		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
			requestLogger = requestLogger.With(slog.String("request_id", id))
		}

		spanCtx := trace.SpanFromContext(c.UserContext()).SpanContext()
		if spanCtx.IsValid() {
			requestLogger = requestLogger.With(
				slog.String("trace_id", spanCtx.TraceID().String()),
				slog.String("span_id", spanCtx.SpanID().String()),
			)
		}

		c.Locals(loggerLocalsKey, requestLogger)
		return c.Next()
	}
}

// RequestLogger returns the logger stored by ContextLoggerMiddleware, or fallback.
func RequestLogger(c *fiber.Ctx, fallback *slog.Logger) *slog.Logger {
	if l, ok := c.Locals(loggerLocalsKey).(*slog.Logger); ok {
		return l
	}
	return fallback
}
