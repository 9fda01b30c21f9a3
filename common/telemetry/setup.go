package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/narender/vending-machine/common/config"
	"github.com/sirupsen/logrus"
	hostmetrics "go.opentelemetry.io/contrib/instrumentation/host"
	runtimemetrics "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes and releases one telemetry component.
type ShutdownFunc func(context.Context) error

const metricExportInterval = 15 * time.Second

// InitTelemetry installs the W3C propagator and, when cfg.OtelEnabled, global
// tracer, meter and logger providers exporting over OTLP/gRPC. The returned
// shutdown func is never nil and releases providers in reverse order.
func InitTelemetry(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (shutdown ShutdownFunc, err error) {
	var shutdownFuncs []ShutdownFunc

	shutdown = func(ctx context.Context) error {
		var shutdownErr error
		for i := len(shutdownFuncs) - 1; i >= 0; i-- {
			shutdownErr = errors.Join(shutdownErr, shutdownFuncs[i](ctx))
		}
		shutdownFuncs = nil
		logger.Debug("OpenTelemetry resources shutdown sequence completed.")
		return shutdownErr
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.OtelEnabled {
		logger.Info("OpenTelemetry export disabled; using no-op providers")
		return shutdown, nil
	}

	defer func() {
		if err != nil {
			logger.WithError(err).Error("OpenTelemetry SDK initialization failed")
			if shutdownErr := shutdown(context.Background()); shutdownErr != nil {
				logger.WithError(shutdownErr).Error("Error during OTel cleanup after setup failure")
			}
		}
	}()

	res, err := newResource(ctx, cfg)
	if err != nil {
		return shutdown, fmt.Errorf("failed to create resource: %w", err)
	}

	conn, err := newOTLPGrpcConnection(cfg, logger)
	if err != nil {
		return shutdown, err
	}
	shutdownFuncs = append(shutdownFuncs, func(context.Context) error { return conn.Close() })

	// --- Traces ---
	traceExporter, err := newTraceExporter(ctx, conn)
	if err != nil {
		return shutdown, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OtelSampleRatio))),
		sdktrace.WithBatcher(traceExporter, sdktrace.WithBatchTimeout(cfg.OtelBatchTimeout)),
	)
	otel.SetTracerProvider(tp)
	shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	logger.Info("TracerProvider initialized and set globally")

	// --- Metrics ---
	metricExporter, err := newMetricExporter(ctx, conn, func(kind sdkmetric.InstrumentKind) metricdata.Temporality {
		if kind == sdkmetric.InstrumentKindCounter || kind == sdkmetric.InstrumentKindHistogram {
			return metricdata.DeltaTemporality
		}
		return metricdata.CumulativeTemporality
	})
	if err != nil {
		return shutdown, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricExportInterval))),
	)
	otel.SetMeterProvider(mp)
	shutdownFuncs = append(shutdownFuncs, mp.Shutdown)
	logger.Info("MeterProvider initialized and set globally")

	if err = runtimemetrics.Start(
		runtimemetrics.WithMeterProvider(mp),
		runtimemetrics.WithMinimumReadMemStatsInterval(metricExportInterval),
	); err != nil {
		return shutdown, fmt.Errorf("failed to start runtime metrics: %w", err)
	}
	if err = hostmetrics.Start(hostmetrics.WithMeterProvider(mp)); err != nil {
		return shutdown, fmt.Errorf("failed to start host metrics: %w", err)
	}

	// --- Logs ---
	logExporter, err := newLogExporter(ctx, conn)
	if err != nil {
		return shutdown, err
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter,
			sdklog.WithExportInterval(5*time.Second),
			sdklog.WithExportTimeout(30*time.Second),
			sdklog.WithMaxQueueSize(2048),
			sdklog.WithExportMaxBatchSize(512),
		)),
	)
	global.SetLoggerProvider(lp)
	shutdownFuncs = append(shutdownFuncs, lp.Shutdown)
	logger.Info("LoggerProvider initialized and set globally")

	logger.WithField("endpoint", cfg.OtelEndpoint).Info("OpenTelemetry SDK initialized successfully")
	return shutdown, nil
}
