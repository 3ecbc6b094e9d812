package usecase

import (
	"context"

	"safespace-srv/internal/alert"
)

// SendOfflineAlert texts each contact in order and stops at the first
// provider failure. No calls are placed.
func (uc *implUseCase) SendOfflineAlert(ctx context.Context, input alert.OfflineAlertInput) error {
	body := buildOfflineBody(input.Message)

	uc.logger.Infof(ctx, "internal.alert.usecase.SendOfflineAlert: notifying %d contacts", len(uc.contacts))

	err := uc.forEachContact(ctx, func(contact string) error {
		if err := uc.notifier.SendMessage(ctx, contact, uc.fromNumber, body); err != nil {
			return alert.NewProviderError(contact, alert.StepSMS, err)
		}
		uc.logger.Debugf(ctx, "internal.alert.usecase.SendOfflineAlert: sms sent to %s", alert.MaskContact(contact))
		return nil
	})
	if err != nil {
		uc.reportFailure(ctx, "Offline alert dispatch failed", err)
		return err
	}

	uc.logger.Info(ctx, "internal.alert.usecase.SendOfflineAlert: all contacts notified")
	return nil
}
