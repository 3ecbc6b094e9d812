package httpserver

import (
	"errors"
	"time"

	"safespace-srv/internal/alert"
	"safespace-srv/pkg/discord"
	"safespace-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) maps routes and serves until shutdown.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	logger          log.Logger
	host            string
	port            int
	mode            string
	shutdownTimeout time.Duration
	allowedOrigins  []string

	// Alert dispatch
	notifier   alert.Notifier
	fromNumber string
	contacts   []string

	// External services
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Alert dispatch
	Notifier   alert.Notifier
	FromNumber string
	Contacts   []string

	// External services, optional
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start serving. Use (*HTTPServer).Run() for that.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		logger:          cfg.Logger,
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,

		notifier:   cfg.Notifier,
		fromNumber: cfg.FromNumber,
		contacts:   cfg.Contacts,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port <= 0 || srv.port > 65535 {
		return errors.New("port is required")
	}
	if srv.notifier == nil {
		return errors.New("notifier is required")
	}
	if srv.fromNumber == "" {
		return errors.New("from number is required")
	}

	return nil
}
