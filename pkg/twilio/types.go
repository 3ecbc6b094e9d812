package twilio

import (
	"time"

	"safespace-srv/pkg/log"

	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Config holds Twilio credentials and client settings.
type Config struct {
	AccountSID string
	AuthToken  string
	Timeout    time.Duration
}

// api is the subset of the Twilio v2010 API used here.
type api interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
	CreateCall(params *openapi.CreateCallParams) (*openapi.ApiV2010Call, error)
}

type twilioImpl struct {
	l   log.Logger
	api api
}
