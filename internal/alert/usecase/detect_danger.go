package usecase

import (
	"context"

	"safespace-srv/internal/alert"
)

func (uc *implUseCase) DetectDanger(ctx context.Context, input alert.DetectDangerInput) alert.DangerCheck {
	if input.Signal == alert.DangerSignal {
		uc.logger.Info(ctx, "internal.alert.usecase.DetectDanger: danger signal received")
		return alert.DangerCheck{Status: alert.StatusDangerDetected, Alert: true}
	}
	return alert.DangerCheck{Status: alert.StatusSafe, Alert: false}
}
