package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert violates the
	// unique constraint on the username column.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an insert violates the
	// unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserAlreadyExists is returned when an insert violates a unique
	// constraint that could not be attributed to a specific column.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match a
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
