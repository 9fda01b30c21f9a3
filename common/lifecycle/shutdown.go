package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/narender/vending-machine/common/config"
	"github.com/sirupsen/logrus"
)

// WaitForGracefulShutdown blocks until SIGINT or SIGTERM arrives or ctx is
// done, then shuts down the server and telemetry in that order.
func WaitForGracefulShutdown(ctx context.Context, cfg *config.Config, server Shutdowner, telemetryShutdown func(context.Context) error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	logger := logrus.StandardLogger()

	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Received shutdown signal, initiating graceful shutdown...")
	case <-ctx.Done():
		logger.WithError(ctx.Err()).Info("Context done, initiating graceful shutdown...")
	}

	return Shutdown(cfg, server, telemetryShutdown)
}

// Shutdown runs each shutdown step with its own timeout, all bounded by the
// configured total timeout.
func Shutdown(cfg *config.Config, server Shutdowner, telemetryShutdown func(context.Context) error) error {
	logger := logrus.StandardLogger()

	// Background context: the shutdown must outlive whatever triggered it.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTotalTimeout)
	defer cancel()

	var serverShutdown func(context.Context) error
	if server != nil {
		serverShutdown = server.Shutdown
	}

	var shutdownErrs error
	shutdownTasks := []struct {
		name     string
		timeout  time.Duration
		shutdown func(context.Context) error
	}{
		{"server", cfg.ShutdownServerTimeout, serverShutdown},
		{"telemetry", cfg.ShutdownOtelMinTimeout, telemetryShutdown},
	}

	for _, task := range shutdownTasks {
		if task.shutdown == nil {
			logger.Debugf("Skipping shutdown for %s (nil function)", task.name)
			continue
		}

		taskCtx, taskCancel := context.WithTimeout(shutdownCtx, task.timeout)

		logger.Infof("Attempting to shut down %s (timeout: %s)...", task.name, task.timeout)
		if err := task.shutdown(taskCtx); err != nil {
			logger.WithError(err).Errorf("Error during %s shutdown", task.name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("%s shutdown error: %w", task.name, err))
			if errors.Is(err, context.DeadlineExceeded) {
				logger.Warnf("%s shutdown timed out after %s", task.name, task.timeout)
			}
		} else {
			logger.Infof("%s shutdown complete", task.name)
		}
		taskCancel()

		if shutdownCtx.Err() != nil {
			logger.Warnf("Overall shutdown timeout (%s) exceeded during %s shutdown. Aborting further steps.", cfg.ShutdownTotalTimeout, task.name)
			if !errors.Is(shutdownErrs, context.DeadlineExceeded) {
				shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("overall shutdown timeout exceeded: %w", shutdownCtx.Err()))
			}
			break
		}
	}

	if shutdownErrs != nil {
		logger.WithError(shutdownErrs).Error("Application shutdown completed with errors")
		return shutdownErrs
	}
	logger.Info("Application shutdown completed successfully")
	return nil
}
