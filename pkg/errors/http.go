package errors

import "net/http"

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewUnavailableHTTPError returns a 503 error with the given message.
func NewUnavailableHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageUnavailable
	}
	return &HTTPError{
		Code:       http.StatusServiceUnavailable,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
