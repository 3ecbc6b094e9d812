package discord

import "context"

// IDiscord posts operational reports to a Discord channel.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}
