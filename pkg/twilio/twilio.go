package twilio

import (
	"context"

	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

func (t *twilioImpl) SendMessage(ctx context.Context, to, from, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	msg, err := t.api.CreateMessage(params)
	if err != nil {
		return toError(err)
	}
	if t.l != nil && msg != nil && msg.Sid != nil {
		t.l.Debugf(ctx, "pkg.twilio.SendMessage: queued message %s", *msg.Sid)
	}
	return nil
}

func (t *twilioImpl) PlaceCall(ctx context.Context, to, from, twiml string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetTwiml(twiml)

	call, err := t.api.CreateCall(params)
	if err != nil {
		return toError(err)
	}
	if t.l != nil && call != nil && call.Sid != nil {
		t.l.Debugf(ctx, "pkg.twilio.PlaceCall: queued call %s", *call.Sid)
	}
	return nil
}
