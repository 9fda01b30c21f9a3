package telemetry

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/narender/vending-machine/common/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// newOTLPGrpcConnection opens one client connection shared by all three exporters.
func newOTLPGrpcConnection(cfg *config.Config, logger *logrus.Logger) (*grpc.ClientConn, error) {
	var transportCreds credentials.TransportCredentials
	if cfg.OtelInsecure {
		transportCreds = insecure.NewCredentials()
		logger.Warn("Using insecure gRPC connection for OTLP exporters")
	} else {
		transportCreds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(cfg.OtelEndpoint, grpc.WithTransportCredentials(transportCreds))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP gRPC client for %s: %w", cfg.OtelEndpoint, err)
	}
	return conn, nil
}

func newTraceExporter(ctx context.Context, conn *grpc.ClientConn) (sdktrace.SpanExporter, error) {
	exp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}
	return exp, nil
}

func newMetricExporter(ctx context.Context, conn *grpc.ClientConn, temporality sdkmetric.TemporalitySelector) (sdkmetric.Exporter, error) {
	exp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithGRPCConn(conn),
		otlpmetricgrpc.WithTemporalitySelector(temporality),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}
	return exp, nil
}

func newLogExporter(ctx context.Context, conn *grpc.ClientConn) (sdklog.Exporter, error) {
	exp, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}
	return exp, nil
}
