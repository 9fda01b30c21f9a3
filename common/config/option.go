package config

import "time"

// Option is a function that configures a Config
type Option func(*Config)

// WithServiceName sets the service name
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithEnvironment sets the deployment environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the log format
func WithLogFormat(format string) Option {
	return func(c *Config) {
		c.LogFormat = format
	}
}

// WithVendingServicePort sets the HTTP listen port
func WithVendingServicePort(port string) Option {
	return func(c *Config) {
		c.VendingServicePort = port
	}
}

// WithCatalogFilePath sets the catalog data file path
func WithCatalogFilePath(path string) Option {
	return func(c *Config) {
		c.CatalogFilePath = path
	}
}

// WithStaticDir sets the directory served as the static UI
func WithStaticDir(dir string) Option {
	return func(c *Config) {
		c.StaticDir = dir
	}
}

// WithOtel enables OpenTelemetry export to endpoint
func WithOtel(endpoint string, insecure bool) Option {
	return func(c *Config) {
		c.OtelEnabled = true
		c.OtelEndpoint = endpoint
		c.OtelInsecure = insecure
	}
}

// WithOtelSampleRatio sets the OpenTelemetry sampling ratio
func WithOtelSampleRatio(ratio float64) Option {
	return func(c *Config) {
		c.OtelSampleRatio = ratio
	}
}

// WithShutdownTimeouts sets the total and per-component shutdown budgets
func WithShutdownTimeouts(total, server, otel time.Duration) Option {
	return func(c *Config) {
		c.ShutdownTotalTimeout = total
		c.ShutdownServerTimeout = server
		c.ShutdownOtelMinTimeout = otel
	}
}
