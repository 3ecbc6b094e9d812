package usecase

import (
	"safespace-srv/internal/alert"
	"safespace-srv/pkg/discord"
	"safespace-srv/pkg/log"
)

// Config is the immutable dispatch setup read at startup.
type Config struct {
	FromNumber string
	Contacts   []string
}

type implUseCase struct {
	logger     log.Logger
	notifier   alert.Notifier
	discord    discord.IDiscord
	fromNumber string
	contacts   []string
}

// New builds the alert use case. discord may be nil.
func New(logger log.Logger, notifier alert.Notifier, discord discord.IDiscord, cfg Config) alert.UseCase {
	contacts := make([]string, len(cfg.Contacts))
	copy(contacts, cfg.Contacts)

	return &implUseCase{
		logger:     logger,
		notifier:   notifier,
		discord:    discord,
		fromNumber: cfg.FromNumber,
		contacts:   contacts,
	}
}
