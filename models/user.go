package models

import "time"

// User is the full account record as stored by the credential store.
// It must never cross the API boundary directly; handlers and token
// claims work with the [SafeUser] projection instead.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique public handle (4–30 characters,
	// must not be email-shaped).
	Username string `json:"username"`

	// Email is the unique contact address used as an alternative
	// login credential.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized; only the login lookup ever reads it.
	PasswordHash []byte `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Safe returns the externally exposable projection of the user.
func (u User) Safe() SafeUser {
	return SafeUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// SafeUser is the subset of user fields that may be embedded in a
// session token or returned to a client. It never carries the
// password hash.
type SafeUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
