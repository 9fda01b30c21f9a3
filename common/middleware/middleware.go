package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/vending-machine/common/apierrors"
)

// RecoverMiddleware turns a panic in a later handler into a SYSTEM_PANIC error
// for the error handler.
func RecoverMiddleware(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				panicErr, ok := r.(error)
				if !ok {
					panicErr = fmt.Errorf("panic: %v", r)
				}

				logger.ErrorContext(c.UserContext(), "CRITICAL: Unhandled panic recovered",
					slog.String("error", panicErr.Error()),
					slog.String("stack", string(debug.Stack())),
					slog.String("path", c.Path()),
					slog.String("method", c.Method()),
				)

				err = apierrors.NewApplicationError(
					apierrors.ErrCodeSystemPanic,
					"A critical system error occurred.",
					panicErr)
			}
		}()
		return c.Next()
	}
}
