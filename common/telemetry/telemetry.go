package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func GetTracer(instrumentationName string) oteltrace.Tracer {
	return otel.Tracer(instrumentationName)
}

func GetMeter(instrumentationName string) metric.Meter {
	return otel.Meter(instrumentationName)
}
