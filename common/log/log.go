package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/narender/vending-machine/common/config"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// Global slog logger instance
var L *slog.Logger

// Init builds the application logger from cfg, stores it in L and makes it
// the slog default. In production with telemetry enabled records go through
// the OTel bridge instead of stdout.
func Init(cfg *config.Config) error {
	if L != nil {
		slog.Warn("Logger already initialized")
		return nil
	}

	var handler slog.Handler
	if cfg.IsProduction() && cfg.OtelEnabled {
		slog.Info("Production environment: Configuring OTel slog handler.", slog.String("service.name", cfg.ServiceName))
		handler = otelslog.NewHandler(cfg.ServiceName)
	} else {
		handler = NewHandler(os.Stdout, cfg.LogFormat, ParseLevel(cfg.LogLevel))
	}

	L = slog.New(handler)
	slog.SetDefault(L)

	L.Info("Logger initialized and set as default", slog.String("environment", cfg.Environment), slog.String("level", cfg.LogLevel))
	return nil
}

// NewHandler returns a console handler writing to w in the given format.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	if strings.ToLower(format) == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel maps a configured level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record. Used by tests and tools.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Cleanup() {
	if L != nil {
		L.Debug("Logger cleanup called (noop).")
	}
}
