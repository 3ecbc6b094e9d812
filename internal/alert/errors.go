package alert

import (
	"errors"
	"fmt"
)

var ErrProviderFailed = errors.New("provider call failed")

// ProviderError is a failed send or call to one contact. Error() is the
// provider's message, unchanged.
type ProviderError struct {
	Contact string
	Step    Step
	Message string
	Err     error
}

// NewProviderError wraps err as the failure of step for contact.
func NewProviderError(contact string, step Step, err error) *ProviderError {
	return &ProviderError{
		Contact: contact,
		Step:    step,
		Message: err.Error(),
		Err:     err,
	}
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProviderFailed, e.Err}
}

// Detail describes the failure for logs and ops reports.
func (e *ProviderError) Detail() string {
	return fmt.Sprintf("%s to %s failed: %s", e.Step, MaskContact(e.Contact), e.Message)
}

// MaskContact hides all but the last four characters of an address.
func MaskContact(contact string) string {
	const visible = 4
	if len(contact) <= visible {
		return contact
	}
	masked := make([]byte, len(contact))
	for i := range contact {
		if i < len(contact)-visible && contact[i] != '+' {
			masked[i] = '*'
		} else {
			masked[i] = contact[i]
		}
	}
	return string(masked)
}
