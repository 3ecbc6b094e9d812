package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.sendWithRetry: retrying attempt %d/%d", attempt, d.config.RetryCount)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}

		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func embedLength(embed *Embed) int {
	total := len(embed.Title) + len(embed.Description)
	for _, f := range embed.Fields {
		total += len(f.Name) + len(f.Value)
	}
	return total
}

func colorForType(msgType MessageType) int {
	switch msgType {
	case MessageTypeSuccess:
		return ColorSuccess
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	default:
		return ColorInfo
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return cutAtRune(s, maxLen-3) + "..."
}

// cutAtRune returns at most n bytes of s without splitting a UTF-8 sequence.
func cutAtRune(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := &Embed{
		Title:       truncate(options.Title, MaxTitleLen),
		Description: truncate(options.Description, MaxDescriptionLen),
		Color:       colorForType(options.Type),
		Fields:      options.Fields,
		Footer:      options.Footer,
	}
	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.Format(time.RFC3339)
	}
	if n := embedLength(embed); n > MaxEmbedLength {
		return fmt.Errorf("embed too long: %d characters (max: %d)", n, MaxEmbedLength)
	}

	return d.sendWithRetry(ctx, &WebhookPayload{
		Embeds:   []Embed{*embed},
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{
			Name:  "Error",
			Value: truncate(err.Error(), MaxFieldValueLen),
		})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	if len(message) > MaxDescriptionLen-6 {
		message = cutAtRune(message, MaxDescriptionLen-9) + "..."
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       ReportBugTitle,
		Description: fmt.Sprintf("```%s```", message),
		Timestamp:   time.Now(),
	})
}
