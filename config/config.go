package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all service configuration. It is loaded once at startup and
// passed by value afterwards.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Provider Configuration
	Twilio   TwilioConfig
	Contacts ContactsConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENVIRONMENT" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"PORT" envDefault:"5000"`
	Mode            string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// TwilioConfig is the configuration for the SMS and voice provider.
type TwilioConfig struct {
	AccountSID string        `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string        `env:"TWILIO_AUTH_TOKEN"`
	FromNumber string        `env:"TWILIO_FROM_NUMBER"`
	Timeout    time.Duration `env:"TWILIO_TIMEOUT" envDefault:"15s"`
}

// ContactsConfig holds the trusted contacts notified on every alert.
type ContactsConfig struct {
	Trusted []string `env:"TRUSTED_CONTACTS" envSeparator:","`
}

// DiscordConfig is the configuration for the optional ops webhook.
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Enabled reports whether both webhook parts are set.
func (d DiscordConfig) Enabled() bool {
	return d.WebhookID != "" && d.WebhookToken != ""
}

// Load reads a .env file when present, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.sanitize()

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) sanitize() {
	c.Contacts.Trusted = cleanList(c.Contacts.Trusted)
	c.CORS.AllowedOrigins = cleanList(c.CORS.AllowedOrigins)
	c.Twilio.FromNumber = strings.TrimSpace(c.Twilio.FromNumber)
}

// cleanList trims entries and drops empty ones, keeping order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validate(cfg *Config) error {
	// Validate Server
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", cfg.HTTPServer.Mode)
	}

	// Validate Twilio
	if cfg.Twilio.AccountSID == "" {
		return errors.New("TWILIO_ACCOUNT_SID is required")
	}
	if cfg.Twilio.AuthToken == "" {
		return errors.New("TWILIO_AUTH_TOKEN is required")
	}
	if cfg.Twilio.FromNumber == "" {
		return errors.New("TWILIO_FROM_NUMBER is required")
	}

	return nil
}
