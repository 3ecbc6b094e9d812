package alert

import "context"

// UseCase defines the SafeSpace alerting operations.
type UseCase interface {
	// DetectDanger classifies a raw signal. Placeholder for a real model.
	DetectDanger(ctx context.Context, input DetectDangerInput) DangerCheck
	// SendAlert texts and calls every trusted contact about a location.
	SendAlert(ctx context.Context, input SendAlertInput) error
	// SendOfflineAlert texts every trusted contact with a free-form message.
	SendOfflineAlert(ctx context.Context, input OfflineAlertInput) error
	// SuggestSafePath returns a canned route. Placeholder for a routing engine.
	SuggestSafePath(ctx context.Context) SafePath
}

// Notifier is the outbound channel to the trusted contacts.
type Notifier interface {
	SendMessage(ctx context.Context, to, from, body string) error
	PlaceCall(ctx context.Context, to, from, twiml string) error
}
