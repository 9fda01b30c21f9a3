package lifecycle

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Shutdowner is implemented by servers that can stop gracefully.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// FiberShutdownAdapter adapts a *fiber.App to the Shutdowner interface.
type FiberShutdownAdapter struct {
	App *fiber.App
}

// Shutdown calls ShutdownWithContext on the wrapped Fiber app.
func (a *FiberShutdownAdapter) Shutdown(ctx context.Context) error {
	if a.App == nil {
		return nil
	}
	return a.App.ShutdownWithContext(ctx)
}
