// Package logger configures the function's structured logging.
//
// It uses *ZeroLog*: JSON lines on stdout for the platform's log
// collector, or a human-friendly console writer for local runs.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/rs/zerolog"
)

// New builds the root logger from the logging config.
//
// Extra writers replace stdout, which is how tests capture output.
func New(cfg *config.Config, writers ...io.Writer) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.GetLogLevel())
	if err != nil {
		return zerolog.Nop(), err
	}
	zerolog.DurationFieldUnit = time.Millisecond

	var output io.Writer = os.Stdout
	if len(writers) > 0 {
		output = io.MultiWriter(writers...)
	}
	if cfg.GetLogFormat() == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "form-relay").
		Str("env", cfg.Primary.Env).
		Logger(), nil
}

// Bootstrap is the logger used before configuration is available,
// mainly to report why configuration failed.
func Bootstrap() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func parseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(level))
}
