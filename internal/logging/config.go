// internal/logging/config.go
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fyrsmithlabs/walletlog/internal/config"
)

var (
	// ErrInvalidFormat is returned for a console format other than console or json.
	ErrInvalidFormat = errors.New("invalid log format")
	// ErrInvalidOutput is returned for an output other than stdout or stderr.
	ErrInvalidOutput = errors.New("invalid log output")
)

// Config holds logger configuration.
type Config struct {
	// Environment fixes the console threshold for the logger's lifetime.
	Environment config.Environment
	// Format is "console" or "json".
	Format string
	// Output is "stdout" or "stderr".
	Output string
}

// NewDefaultConfig returns config for the build's default environment.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: config.DefaultEnvironment,
		Format:      "console",
		Output:      "stdout",
	}
}

// FromAppConfig derives logger config from the loaded application config.
func FromAppConfig(cfg *config.Config) *Config {
	return &Config{
		Environment: cfg.Environment,
		Format:      cfg.Logging.Format,
		Output:      cfg.Logging.Output,
	}
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if _, err := c.environment(); err != nil {
		return err
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("%w: must be 'json' or 'console', got %q", ErrInvalidFormat, c.Format)
	}
	if c.Output != "stdout" && c.Output != "stderr" {
		return fmt.Errorf("%w: must be 'stdout' or 'stderr', got %q", ErrInvalidOutput, c.Output)
	}
	return nil
}

// environment returns the canonical environment, resolving aliases.
func (c *Config) environment() (config.Environment, error) {
	return config.ParseEnvironment(string(c.Environment))
}

func (c *Config) writer() io.Writer {
	if c.Output == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}
