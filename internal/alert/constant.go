package alert

const (
	DangerSignal = "danger"

	StatusDangerDetected = "Danger detected"
	StatusSafe           = "Safe"

	StatusAlertSent        = "SMS + Calls sent successfully"
	StatusOfflineAlertSent = "Offline alerts sent"
)
