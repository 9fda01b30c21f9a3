package trace

import (
	"context"

	"github.com/narender/vending-machine/common/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/narender/vending-machine"

func DefaultStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}

	return codes.Error
}

type StatusMapperFunc func(error) codes.Code

// StartSpan begins a new internal span named after the calling function.
func StartSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	operationName := utils.GetCallerFunctionName(3)
	tracer := otel.Tracer(tracerName)

	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			semconv.CodeFunctionKey.String(operationName),
			semconv.CodeNamespaceKey.String(tracerName),
		),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}

	return tracer.Start(ctx, operationName, opts...)
}

// EndSpan concludes the given span, recording *errPtr when set. statusMapper
// decides the span status for a non-nil error; nil means DefaultStatusMapper.
func EndSpan(span trace.Span, errPtr *error, statusMapper StatusMapperFunc, options ...trace.SpanEndOption) {
	defer span.End(options...)

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	span.RecordError(err)

	mapper := statusMapper
	if mapper == nil {
		mapper = DefaultStatusMapper
	}
	statusCode := mapper(err)

	statusMsg := ""
	if statusCode == codes.Error {
		statusMsg = err.Error()
	}

	span.SetStatus(statusCode, statusMsg)
}
