package main

import (
	"context"
	"fmt"
	"os"

	"safespace-srv/config"
	"safespace-srv/internal/httpserver"
	"safespace-srv/pkg/discord"
	"safespace-srv/pkg/log"
	"safespace-srv/pkg/twilio"
)

// @title       SafeSpace Alert Service
// @description Forwards danger alerts to trusted contacts by SMS and voice call.
// @version     1.0
// @host        localhost:5000
// @schemes     http
// @BasePath    /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Infof(ctx, "Starting SafeSpace alert service (%s)", cfg.Environment.Name)

	// Initialize Discord, optional
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		client, err := discord.New(logger, discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return err
		}
		defer client.Close()
		discordClient = client
	} else {
		logger.Warn(ctx, "Discord webhook not configured, ops reporting disabled")
	}

	// Initialize Twilio
	twilioClient, err := twilio.New(logger, twilio.Config{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		Timeout:    cfg.Twilio.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Twilio: ", err)
		return err
	}
	logger.Infof(ctx, "Twilio client ready, %d trusted contacts configured", len(cfg.Contacts.Trusted))

	// Initialize HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		// Server Configuration
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,

		// Alert Configuration
		Notifier:   twilioClient,
		FromNumber: cfg.Twilio.FromNumber,
		Contacts:   cfg.Contacts.Trusted,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}
	logger.Info(ctx, "Shutdown complete")
	return nil
}
