// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when one exists), loads them into structured Go types, and
// validates that required values are present so the function fails
// fast on a bad deploy instead of on the first submission.
//
// Responsibilities:
//   - Load the three required variables: EMAIL, PASS, ALLOWED_ORIGINS.
//   - Load optional tuning under the FORM_RELAY_ prefix.
//   - Validate required values and cross-field rules.
//   - Parse the origin allow-list once.
//
// Allow-list entries are trimmed on purpose, so
// "https://a.com, https://b.com" allows both origins instead of an
// origin with a leading space.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it gets loaded into
	// the process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// OptionalPrefix is the prefix of every optional variable.
const OptionalPrefix = "FORM_RELAY_"

// requiredKeys maps the unprefixed variables the function cannot start
// without to their koanf keys.
var requiredKeys = map[string]string{
	"EMAIL":           "email",
	"PASS":            "pass",
	"ALLOWED_ORIGINS": "allowed_origins",
}

// Config is the root configuration object for the function.
//
// It is built once per process and passed explicitly to every stage;
// nothing mutates it after LoadConfig returns.
type Config struct {
	Primary Primary `koanf:"primary"`

	// Email is the authenticated sender address. It is the SMTP user and
	// the From of every outgoing message.
	Email string `koanf:"email" validate:"required"`

	// Pass is the sender credential: the SMTP password (an app password
	// for gmail) or the Resend API key.
	Pass string `koanf:"pass" validate:"required"`

	// AllowedOrigins is the raw comma-separated allow-list.
	AllowedOrigins string `koanf:"allowed_origins" validate:"required"`

	Mail     MailConfig     `koanf:"mail"`
	Redirect RedirectConfig `koanf:"redirect"`
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`

	// AllowList is AllowedOrigins parsed by ParseOrigins.
	AllowList []string `koanf:"-"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// MailConfig selects and tunes the outbound mail transport.
type MailConfig struct {
	// Transport is "smtp" or "resend".
	Transport string `koanf:"transport" validate:"oneof=smtp resend"`

	// Service is a well-known SMTP service name (see Services). It is
	// ignored when SMTPHost is set.
	Service string `koanf:"service"`

	SMTPHost string `koanf:"smtp_host"`
	SMTPPort int    `koanf:"smtp_port" validate:"omitempty,min=1,max=65535"`

	// FromName is an optional display name for the From header.
	FromName string `koanf:"from_name"`
}

// RedirectConfig holds the paths appended to the request origin when a
// form post is answered with a redirect.
type RedirectConfig struct {
	SuccessPath string `koanf:"success_path" validate:"required"`
	ErrorPath   string `koanf:"error_path" validate:"required"`
}

// ServerConfig is only read by the local development server.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout int    `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"min=1"`
}

// SuccessURL is where a successful form post is redirected.
func (r RedirectConfig) SuccessURL(origin string) string {
	return origin + r.SuccessPath
}

// ErrorURL is where a failed form post is redirected.
func (r RedirectConfig) ErrorURL(origin string) string {
	return origin + r.ErrorPath
}

// DefaultConfig returns a Config with every optional value filled in.
// Required values stay empty.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "production"},
		Mail: MailConfig{
			Transport: "smtp",
			Service:   "gmail",
		},
		Redirect: RedirectConfig{
			SuccessPath: "/#success",
			ErrorPath:   "/#error",
		},
		Server: ServerConfig{
			Port:         "8888",
			ReadTimeout:  10,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Logging: DefaultLoggingConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// over DefaultConfig, validates it and parses the allow-list.
//
// Env var mapping:
//   - EMAIL, PASS, ALLOWED_ORIGINS map to top-level keys.
//   - FORM_RELAY_<GROUP>_<NAME> maps to <group>.<name>, e.g.
//     FORM_RELAY_MAIL_SMTP_HOST -> mail.smtp_host -> Config.Mail.SMTPHost.
//
// Any other variable is ignored.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", func(s string) string {
		return requiredKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load required env variables: %w", err)
	}

	err = k.Load(env.Provider(OptionalPrefix, ".", optionalKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s env variables: %w", OptionalPrefix, err)
	}

	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	mainConfig.AllowList = ParseOrigins(mainConfig.AllowedOrigins)

	return mainConfig, nil
}

// optionalKey turns FORM_RELAY_MAIL_SMTP_HOST into "mail.smtp_host".
// Variables without a group are dropped.
func optionalKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, OptionalPrefix))
	group, name, ok := strings.Cut(key, "_")
	if !ok || group == "" || name == "" {
		return ""
	}
	return group + "." + name
}

// Validate applies rules that go beyond struct tags.
func (c *Config) Validate() error {
	if c.Mail.Transport == "smtp" {
		if _, _, err := c.Mail.Endpoint(); err != nil {
			return err
		}
	}

	return c.Logging.Validate()
}

// ParseOrigins splits a comma-separated allow-list, trimming entries and
// discarding empty ones.
func ParseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// IsDevelopment reports whether FORM_RELAY_PRIMARY_ENV names a local setup.
func (c *Config) IsDevelopment() bool {
	return c.Primary.Env == "development" || c.Primary.Env == "dev"
}
