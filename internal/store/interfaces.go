// Package store implements the credential store: persistence of user
// records against PostgreSQL (production) or SQLite (development and
// tests), with uniqueness constraints enforced by the database engine.
package store

import (
	"context"

	"github.com/opeller/authgate/models"
)

// UserRepository is the data-access contract for user accounts.
//
// FindUserByCredential is the only method that returns the password
// hash; it exists solely for the login verification path. All other
// lookups use the current-user projection which excludes the hash.
type UserRepository interface {
	// CreateUser persists a new account and returns it with
	// server-assigned fields populated. A duplicate username or email
	// surfaces as ErrUsernameAlreadyExists / ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID retrieves an account by its identifier using the
	// current-user projection (no password hash).
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByCredential retrieves the full account record whose
	// username OR email equals credential.
	FindUserByCredential(ctx context.Context, credential string) (models.User, error)
}
