// Package config provides configuration loading for walletlog.
//
// Configuration is loaded from environment variables with sensible defaults,
// optionally layered over a YAML file (see LoadWithFile).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds the complete walletlog configuration.
type Config struct {
	Environment Environment   `koanf:"environment"`
	Logging     LoggingConfig `koanf:"logging"`
	Metrics     MetricsConfig `koanf:"metrics"`
}

// LoggingConfig holds console sink configuration.
type LoggingConfig struct {
	Format string `koanf:"format"` // console or json
	Output string `koanf:"output"` // stdout or stderr
}

// MetricsConfig holds Prometheus counter configuration.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
}

const (
	defaultFormat    = "console"
	defaultOutput    = "stdout"
	defaultNamespace = "walletlog"
)

// Load loads configuration from environment variables with defaults.
//
// Environment variables:
//   - WALLETLOG_ENVIRONMENT: development or production (default: build tag)
//   - WALLETLOG_LOGGING_FORMAT: console or json (default: console)
//   - WALLETLOG_LOGGING_OUTPUT: stdout or stderr (default: stdout)
//   - WALLETLOG_METRICS_ENABLED: register Prometheus counters (default: false)
//   - WALLETLOG_METRICS_NAMESPACE: metric name prefix (default: walletlog)
//
// Example:
//
//	cfg := config.Load()
//	fmt.Println("Environment:", cfg.Environment)
func Load() *Config {
	cfg := &Config{
		Environment: getEnvEnvironment("WALLETLOG_ENVIRONMENT", DefaultEnvironment),
		Logging: LoggingConfig{
			Format: getEnvString("WALLETLOG_LOGGING_FORMAT", defaultFormat),
			Output: getEnvString("WALLETLOG_LOGGING_OUTPUT", defaultOutput),
		},
		Metrics: MetricsConfig{
			Enabled:   getEnvBool("WALLETLOG_METRICS_ENABLED", false),
			Namespace: getEnvString("WALLETLOG_METRICS_NAMESPACE", defaultNamespace),
		},
	}
	return cfg
}

// Validate validates the configuration.
//
// Returns an error if:
//   - Environment is not development or production
//   - Logging format is not console or json
//   - Logging output is not stdout or stderr
//   - Metrics namespace is empty while metrics are enabled
func (c *Config) Validate() error {
	if _, err := ParseEnvironment(string(c.Environment)); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging format must be 'console' or 'json', got %q", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("logging output must be 'stdout' or 'stderr', got %q", c.Logging.Output)
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return errors.New("metrics namespace required when metrics are enabled")
	}

	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	} else if env, err := ParseEnvironment(string(cfg.Environment)); err == nil {
		cfg.Environment = env
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultFormat
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = defaultOutput
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaultNamespace
	}
}

// Helper functions for environment variable parsing

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvEnvironment(key string, defaultValue Environment) Environment {
	if value := os.Getenv(key); value != "" {
		if parsed, err := ParseEnvironment(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
