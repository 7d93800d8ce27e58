// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, password
// hashing, session token generation and validation, CSRF token minting,
// and HTTP response writing.
package utils

import (
	"context"

	"github.com/opeller/authgate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the resolve-user middleware
// stores the authenticated user's safe view in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CurrentUserCtxKey, safeUser)
var CurrentUserCtxKey = contextKey("currentUser")

// GetCurrentUserFromContext retrieves the current user from the context.
//
// Returns the safe user view and an ok flag:
//   - ok == true: a user was resolved for this request
//   - ok == false: the request is anonymous
func GetCurrentUserFromContext(ctx context.Context) (models.SafeUser, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.SafeUser)
	return user, ok
}
