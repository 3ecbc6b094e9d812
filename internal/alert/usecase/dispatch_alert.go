package usecase

import (
	"context"

	"safespace-srv/internal/alert"
)

// SendAlert texts then calls each contact in order and stops at the first
// provider failure.
func (uc *implUseCase) SendAlert(ctx context.Context, input alert.SendAlertInput) error {
	body := buildAlertBody(input.Location)
	twiml := buildAlertTwiML(input.Location)

	uc.logger.Infof(ctx, "internal.alert.usecase.SendAlert: notifying %d contacts", len(uc.contacts))

	err := uc.forEachContact(ctx, func(contact string) error {
		if err := uc.notifier.SendMessage(ctx, contact, uc.fromNumber, body); err != nil {
			return alert.NewProviderError(contact, alert.StepSMS, err)
		}
		uc.logger.Debugf(ctx, "internal.alert.usecase.SendAlert: sms sent to %s", alert.MaskContact(contact))

		if err := uc.notifier.PlaceCall(ctx, contact, uc.fromNumber, twiml); err != nil {
			return alert.NewProviderError(contact, alert.StepCall, err)
		}
		uc.logger.Debugf(ctx, "internal.alert.usecase.SendAlert: call placed to %s", alert.MaskContact(contact))
		return nil
	})
	if err != nil {
		uc.reportFailure(ctx, "Alert dispatch failed", err)
		return err
	}

	uc.logger.Info(ctx, "internal.alert.usecase.SendAlert: all contacts notified")
	return nil
}
