package usecase

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"safespace-srv/internal/alert"
)

const reportTimeout = 15 * time.Second

func buildAlertBody(location string) string {
	return fmt.Sprintf("🚨 SafeSpace Alert! Possible danger detected at %s.", location)
}

func buildAlertTwiML(location string) string {
	return fmt.Sprintf(
		"<Response><Say>🚨 SafeSpace Alert! Possible danger detected at %s. Please check immediately.</Say></Response>",
		escapeXML(location),
	)
}

func buildOfflineBody(message string) string {
	return fmt.Sprintf("SafeSpace Offline Alert: %s", message)
}

// escapeXML keeps user text from breaking out of the <Say> element.
func escapeXML(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}

// forEachContact runs fn for every contact in order and returns the first
// error. Contacts after a failure are not attempted.
func (uc *implUseCase) forEachContact(ctx context.Context, fn func(contact string) error) error {
	for _, contact := range uc.contacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(contact); err != nil {
			return err
		}
	}
	return nil
}

// reportFailure logs the failure and posts it to the ops channel without
// blocking the caller.
func (uc *implUseCase) reportFailure(ctx context.Context, title string, err error) {
	detail := err.Error()
	var provErr *alert.ProviderError
	if errors.As(err, &provErr) {
		detail = provErr.Detail()
	}
	uc.logger.Errorf(ctx, "internal.alert.usecase: %s: %s", title, detail)

	if uc.discord == nil {
		return
	}

	reportCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	go func() {
		defer cancel()
		desc := fmt.Sprintf("Trusted contacts configured: %d", len(uc.contacts))
		if rerr := uc.discord.SendError(reportCtx, title, desc, errors.New(detail)); rerr != nil {
			uc.logger.Warnf(reportCtx, "internal.alert.usecase.reportFailure: discord: %v", rerr)
		}
	}()
}
