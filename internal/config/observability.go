package config

import (
	"fmt"
)

// LoggingConfig holds the function's logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the output: "json" for the platform's log
	// collector, "console" for humans running the dev server. Empty
	// picks by environment, see GetLogFormat.
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
}

// DefaultLoggingConfig provides the defaults used when nothing is set.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level: "info",
	}
}

// Validate rejects unknown log levels so a typo like "inf" fails the
// deploy instead of silently logging everything.
func (c LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if c.Level != "" && !validLevels[c.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Level)
	}

	return nil
}

// GetLogLevel returns the effective log level.
//
// An empty level defaults to "debug" in development and "info" elsewhere.
func (c *Config) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsDevelopment() {
		return "debug"
	}
	return "info"
}

// GetLogFormat returns the effective log format.
//
// An empty format defaults to "json" in production and "console" elsewhere.
func (c *Config) GetLogFormat() string {
	if c.Logging.Format != "" {
		return c.Logging.Format
	}
	if c.IsProduction() {
		return "json"
	}
	return "console"
}

// IsProduction reports whether the function is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}
