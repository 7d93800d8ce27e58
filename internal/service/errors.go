package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is the single, deliberately generic login
	// failure: it never reveals whether the credential existed.
	ErrInvalidCredentials = errors.New("the provided credentials were invalid")

	// ErrTokenCreationFailed wraps signing failures during token issuance.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError carries every rule violated by a single request, so
// clients see the full list at once instead of fixing one field per
// round trip.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a *ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
