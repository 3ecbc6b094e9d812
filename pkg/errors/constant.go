package errors

const (
	MessageUnavailable  = "Service unavailable"
	MessageFieldMissing = "is required"
)
