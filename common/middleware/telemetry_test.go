package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelfiber "github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestOtelMiddleware_StartsServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	app := fiber.New()
	app.Use(OtelMiddleware(otelfiber.WithTracerProvider(provider)))
	app.Get("/balance", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/balance", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, oteltrace.SpanKindServer, spans[0].SpanKind())
}
