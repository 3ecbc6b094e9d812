package twilio

import "context"

// ITwilio sends SMS and places voice calls through Twilio.
type ITwilio interface {
	SendMessage(ctx context.Context, to, from, body string) error
	PlaceCall(ctx context.Context, to, from, twiml string) error
}
