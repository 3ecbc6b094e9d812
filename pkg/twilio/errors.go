package twilio

import (
	"errors"

	twilioClient "github.com/twilio/twilio-go/client"
)

var (
	errAccountSIDRequired = errors.New("twilio: account SID is required")
	errAuthTokenRequired  = errors.New("twilio: auth token is required")
)

// Error is a failed Twilio API call. Error() returns Twilio's own message.
type Error struct {
	Code    int
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func toError(err error) *Error {
	var restErr *twilioClient.TwilioRestError
	if errors.As(err, &restErr) {
		msg := restErr.Message
		if msg == "" {
			msg = unknownErrorMessage
		}
		return &Error{
			Code:    restErr.Code,
			Status:  restErr.Status,
			Message: msg,
			Err:     err,
		}
	}

	msg := err.Error()
	if msg == "" {
		msg = unknownErrorMessage
	}
	return &Error{Message: msg, Err: err}
}
