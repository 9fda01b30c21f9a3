package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return recorder
}

func insertCoin(ctx context.Context, fail error) (err error) {
	_, span := StartSpan(ctx, attribute.String("coin", "0.50"))
	defer EndSpan(span, &err, nil)
	return fail
}

func TestStartSpan_NamedAfterCaller(t *testing.T) {
	recorder := withRecorder(t)

	require.NoError(t, insertCoin(context.Background(), nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "insertCoin", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
}

func TestEndSpan_RecordsError(t *testing.T) {
	recorder := withRecorder(t)

	_ = insertCoin(context.Background(), errors.New("jammed"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "jammed", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
}

func TestEndSpan_StatusMapper(t *testing.T) {
	recorder := withRecorder(t)

	func() {
		err := errors.New("expected rejection")
		_, span := StartSpan(context.Background())
		EndSpan(span, &err, func(error) codes.Code { return codes.Unset })
	}()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}
