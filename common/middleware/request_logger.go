package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLoggerMiddleware logs one line per request once the response status is known.
func RequestLoggerMiddleware(baseLogger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		statusCode := c.Response().StatusCode()
		logger := RequestLogger(c, baseLogger)

		attrs := []slog.Attr{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", c.IP()),
			slog.String("user_agent", string(c.Request().Header.UserAgent())),
		}

		level := slog.LevelInfo
		if statusCode >= fiber.StatusInternalServerError {
			level = slog.LevelError
		} else if statusCode >= fiber.StatusBadRequest {
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.UserContext(), level, "Request completed", attrs...)
		return nil
	}
}
