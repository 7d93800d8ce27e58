// Package service implements the application's business logic on top of
// the credential store: account creation, credential verification, and
// the session token lifecycle.
package service

import (
	"context"

	"github.com/opeller/authgate/models"
)

// AuthService covers the whole authentication surface.
//
// Signup and Login return only the user-safe view; the password hash
// never crosses this boundary. Token parsing failures keep their typed
// identity (malformed / expired / signature mismatch) for diagnostics,
// but callers are expected to treat them all as "no session".
type AuthService interface {
	// Signup validates the request (reporting every violated rule at
	// once), hashes the password, and creates the account. Duplicate
	// username/email surfaces as a *ValidationError.
	Signup(ctx context.Context, req models.SignupRequest) (models.SafeUser, error)

	// Login resolves the credential (username or email) and verifies the
	// password. Any mismatch, unknown credential or wrong password,
	// yields the same ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.SafeUser, error)

	// CurrentUser loads the safe view of the account referenced by a
	// verified token claim.
	CurrentUser(ctx context.Context, userID int64) (models.SafeUser, error)

	// IssueToken signs a session token embedding the user-safe view.
	IssueToken(ctx context.Context, user models.SafeUser) (string, error)

	// ParseToken validates a raw session token and returns the embedded
	// user-safe view.
	ParseToken(ctx context.Context, tokenString string) (models.SafeUser, error)
}
