package alert

// DetectDangerInput carries the raw signal to classify.
type DetectDangerInput struct {
	Signal string
}

// DangerCheck is the outcome of a danger classification.
type DangerCheck struct {
	Status string
	Alert  bool
}

// SendAlertInput is a location-tagged danger alert.
type SendAlertInput struct {
	Location string
}

// OfflineAlertInput is a free-form message sent over SMS only.
type OfflineAlertInput struct {
	Message string
}

// SafePath is a suggested route away from danger.
type SafePath struct {
	CurrentLocation string
	SuggestedPath   []string
}

// Step identifies which notification of a contact failed.
type Step string

const (
	StepSMS  Step = "sms"
	StepCall Step = "call"
)
