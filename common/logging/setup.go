package logging

import (
	"os"
	"strings"
	"time"

	"github.com/narender/vending-machine/common/config"
	"github.com/sirupsen/logrus"
)

// SetupLogrus configures the logrus standard logger used for bootstrap,
// telemetry setup and shutdown, and returns it.
func SetupLogrus(cfg *config.Config) *logrus.Logger {
	logger := logrus.StandardLogger()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info': %v", cfg.LogLevel, err)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	}
	logger.SetOutput(os.Stderr)

	logger.Debugf("Logrus initialized with level '%s' and format '%s'.", logger.GetLevel(), cfg.LogFormat)
	return logger
}

// EnableOtelHook attaches the OTel hook so logrus entries are exported too.
func EnableOtelHook(logger *logrus.Logger, scope string) {
	logger.AddHook(NewOtelHook(scope))
	logger.Debug("Configured logrus with OpenTelemetry hook")
}
