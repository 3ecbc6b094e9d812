package errors

import (
	"fmt"
	"strings"
)

// ValidationError is an error with a field and a list of messages.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return strings.Join(e.Messages, ", ")
	}
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}
