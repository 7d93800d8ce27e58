package client

import (
	"context"

	"github.com/opeller/authgate/models"
)

// SessionAPI is the server-facing surface the CLI works against.
type SessionAPI interface {
	// RestoreSession asks the server who the current session belongs to.
	// A nil user means the session is anonymous.
	RestoreSession(ctx context.Context) (*models.SafeUser, error)

	// Signup creates an account and establishes a session for it.
	Signup(ctx context.Context, req models.SignupRequest) (models.SafeUser, error)

	// Login authenticates with a username-or-email credential.
	Login(ctx context.Context, credential, password string) (models.SafeUser, error)

	// Logout drops the server-side session cookie.
	Logout(ctx context.Context) error
}
