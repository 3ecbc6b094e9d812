package middleware

import (
	"safespace-srv/pkg/discord"
	"safespace-srv/pkg/log"
)

type Middleware struct {
	logger  log.Logger
	discord discord.IDiscord
	cors    CORSConfig
}

// New builds the middleware set. discord may be nil.
func New(logger log.Logger, discord discord.IDiscord, cors CORSConfig) Middleware {
	return Middleware{
		logger:  logger,
		discord: discord,
		cors:    cors,
	}
}
