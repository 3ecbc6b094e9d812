package discord

import (
	"errors"
	"net/http"
	"time"

	"safespace-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// DefaultConfig returns the default Discord config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: DefaultUsername,
		BaseURL:         webhookBaseURL,
	}
}

// New creates a Discord client with the default config.
// Logger can be nil, logging is skipped then.
func New(l log.Logger, webhook DiscordWebhook) (IDiscord, error) {
	return NewWithConfig(l, webhook, DefaultConfig())
}

// NewWithConfig creates a Discord client with an explicit config.
func NewWithConfig(l log.Logger, webhook DiscordWebhook, cfg Config) (IDiscord, error) {
	if webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = webhookBaseURL
	}
	if cfg.DefaultUsername == "" {
		cfg.DefaultUsername = DefaultUsername
	}

	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}
