package twilio

import "time"

const (
	DefaultTimeout = 15 * time.Second

	// Twilio answers with this message when the API fails without a body.
	unknownErrorMessage = "twilio request failed"
)
