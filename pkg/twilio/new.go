package twilio

import (
	"time"

	"safespace-srv/pkg/log"

	twilioSDK "github.com/twilio/twilio-go"
)

// New creates a Twilio client from account credentials.
func New(l log.Logger, cfg Config) (ITwilio, error) {
	if cfg.AccountSID == "" {
		return nil, errAccountSIDRequired
	}
	if cfg.AuthToken == "" {
		return nil, errAuthTokenRequired
	}

	client := twilioSDK.NewRestClientWithParams(twilioSDK.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	client.SetTimeout(requestTimeout(cfg.Timeout))

	return &twilioImpl{
		l:   l,
		api: client.Api,
	}, nil
}

// requestTimeout is the per-request timeout given to the REST client.
func requestTimeout(configured time.Duration) time.Duration {
	if configured <= 0 {
		return DefaultTimeout
	}
	return configured
}
