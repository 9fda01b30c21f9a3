package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Initialize a minimal logger for config loading phase
var configLogger = logrus.New()

func init() {
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.InfoLevel)
}

// Keys are both the viper keys and the environment variable names.
const (
	keyServiceName            = "SERVICE_NAME"
	keyServiceVersion         = "SERVICE_VERSION"
	keyEnvironment            = "ENVIRONMENT"
	keyLogLevel               = "LOG_LEVEL"
	keyLogFormat              = "LOG_FORMAT"
	keyVendingServicePort     = "VENDING_SERVICE_PORT"
	keyCatalogFilePath        = "CATALOG_FILE_PATH"
	keyStaticDir              = "STATIC_DIR"
	keyOtelEnabled            = "OTEL_ENABLED"
	keyOtelEndpoint           = "OTEL_EXPORTER_OTLP_ENDPOINT"
	keyOtelInsecure           = "OTEL_EXPORTER_INSECURE"
	keyOtelSampleRatio        = "OTEL_SAMPLE_RATIO"
	keyOtelBatchTimeoutMS     = "OTEL_BATCH_TIMEOUT_MS"
	keyShutdownTotalTimeout   = "SHUTDOWN_TOTAL_TIMEOUT_SEC"
	keyShutdownServerTimeout  = "SHUTDOWN_SERVER_TIMEOUT_SEC"
	keyShutdownOtelMinTimeout = "SHUTDOWN_OTEL_MIN_TIMEOUT_SEC"

	// envConfigFile points at an optional YAML/JSON/TOML file read before the environment.
	envConfigFile = "VENDING_CONFIG_FILE"
)

var (
	allowedLogLevels  = []string{"debug", "info", "warn", "error"}
	allowedLogFormats = []string{"text", "json"}
)

// Config holds all configuration settings
type Config struct {
	// Service information
	ServiceName    string
	ServiceVersion string
	Environment    string

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Application-specific settings
	VendingServicePort string
	CatalogFilePath    string
	StaticDir          string

	// OpenTelemetry configuration
	OtelEnabled      bool
	OtelEndpoint     string
	OtelInsecure     bool
	OtelSampleRatio  float64
	OtelBatchTimeout time.Duration

	// Shutdown timeouts
	ShutdownTotalTimeout   time.Duration
	ShutdownServerTimeout  time.Duration
	ShutdownOtelMinTimeout time.Duration
}

// NewConfig creates a new Config with defaults and applies opts on top.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		ServiceName:            "vending-service",
		ServiceVersion:         "dev",
		Environment:            "development",
		LogLevel:               "info",
		LogFormat:              "json",
		VendingServicePort:     "3000",
		OtelEnabled:            false,
		OtelEndpoint:           "localhost:4317",
		OtelInsecure:           true,
		OtelSampleRatio:        1.0,
		OtelBatchTimeout:       5 * time.Second,
		ShutdownTotalTimeout:   30 * time.Second,
		ShutdownServerTimeout:  10 * time.Second,
		ShutdownOtelMinTimeout: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LoadConfig builds the configuration from defaults, an optional config file
// named by VENDING_CONFIG_FILE and the process environment, in that order of
// precedence (environment wins). The result is validated before it is returned.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	if path := os.Getenv(envConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		configLogger.WithField("file", v.ConfigFileUsed()).Info("Config file loaded")
	}

	v.AutomaticEnv()

	cfg := fromViper(v)
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	cfg.Log()
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(keyServiceName, d.ServiceName)
	v.SetDefault(keyServiceVersion, d.ServiceVersion)
	v.SetDefault(keyEnvironment, d.Environment)
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyLogFormat, d.LogFormat)
	v.SetDefault(keyVendingServicePort, d.VendingServicePort)
	v.SetDefault(keyCatalogFilePath, d.CatalogFilePath)
	v.SetDefault(keyStaticDir, d.StaticDir)
	v.SetDefault(keyOtelEnabled, d.OtelEnabled)
	v.SetDefault(keyOtelEndpoint, d.OtelEndpoint)
	v.SetDefault(keyOtelInsecure, d.OtelInsecure)
	v.SetDefault(keyOtelSampleRatio, d.OtelSampleRatio)
	v.SetDefault(keyOtelBatchTimeoutMS, d.OtelBatchTimeout.Milliseconds())
	v.SetDefault(keyShutdownTotalTimeout, int(d.ShutdownTotalTimeout.Seconds()))
	v.SetDefault(keyShutdownServerTimeout, int(d.ShutdownServerTimeout.Seconds()))
	v.SetDefault(keyShutdownOtelMinTimeout, int(d.ShutdownOtelMinTimeout.Seconds()))
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServiceName:            v.GetString(keyServiceName),
		ServiceVersion:         v.GetString(keyServiceVersion),
		Environment:            strings.ToLower(v.GetString(keyEnvironment)),
		LogLevel:               strings.ToLower(v.GetString(keyLogLevel)),
		LogFormat:              strings.ToLower(v.GetString(keyLogFormat)),
		VendingServicePort:     v.GetString(keyVendingServicePort),
		CatalogFilePath:        v.GetString(keyCatalogFilePath),
		StaticDir:              v.GetString(keyStaticDir),
		OtelEnabled:            v.GetBool(keyOtelEnabled),
		OtelEndpoint:           v.GetString(keyOtelEndpoint),
		OtelInsecure:           v.GetBool(keyOtelInsecure),
		OtelSampleRatio:        v.GetFloat64(keyOtelSampleRatio),
		OtelBatchTimeout:       time.Duration(v.GetInt(keyOtelBatchTimeoutMS)) * time.Millisecond,
		ShutdownTotalTimeout:   time.Duration(v.GetInt(keyShutdownTotalTimeout)) * time.Second,
		ShutdownServerTimeout:  time.Duration(v.GetInt(keyShutdownServerTimeout)) * time.Second,
		ShutdownOtelMinTimeout: time.Duration(v.GetInt(keyShutdownOtelMinTimeout)) * time.Second,
	}
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate validates the configuration
func (c *Config) Validate() []error {
	validator := NewValidator()

	validator.RequireNonEmpty("ServiceName", c.ServiceName)
	validator.RequireNonEmpty("ServiceVersion", c.ServiceVersion)
	validator.RequireNonEmpty("VendingServicePort", c.VendingServicePort)

	validator.RequireOneOf("LogLevel", c.LogLevel, allowedLogLevels)
	validator.RequireOneOf("LogFormat", c.LogFormat, allowedLogFormats)

	if port, err := strconv.Atoi(c.VendingServicePort); err == nil {
		RequireInRange(validator, "VendingServicePort", port, 1, 65535)
	} else {
		validator.AddError("VendingServicePort", "must be a valid integer")
	}

	if c.OtelEnabled {
		validator.RequireNonEmpty("OtelEndpoint", c.OtelEndpoint)
		RequireInRange(validator, "OtelSampleRatio", c.OtelSampleRatio, 0.0, 1.0)
	}

	RequireInRange(validator, "ShutdownTotalTimeout", c.ShutdownTotalTimeout, 0, time.Hour)

	// A missing catalog file is not an error here: the loader falls back to the default catalog.
	if c.StaticDir != "" {
		if info, err := os.Stat(c.StaticDir); err != nil || !info.IsDir() {
			validator.AddError("StaticDir", "directory does not exist: "+c.StaticDir)
		}
	}

	return validator.Errors()
}

// Log logs the current configuration
func (c *Config) Log() {
	configLogger.WithFields(logrus.Fields{
		"service_name":      c.ServiceName,
		"service_version":   c.ServiceVersion,
		"environment":       c.Environment,
		"log_level":         c.LogLevel,
		"log_format":        c.LogFormat,
		"port":              c.VendingServicePort,
		"catalog_file_path": c.CatalogFilePath,
		"static_dir":        c.StaticDir,
		"otel_enabled":      c.OtelEnabled,
		"otel_endpoint":     c.OtelEndpoint,
		"otel_insecure":     c.OtelInsecure,
		"otel_sample_ratio": c.OtelSampleRatio,
		"shutdown_total":    c.ShutdownTotalTimeout,
		"shutdown_server":   c.ShutdownServerTimeout,
		"shutdown_otel":     c.ShutdownOtelMinTimeout,
	}).Info("Configuration loaded")
}
