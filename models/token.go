package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the claim set carried by a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard iat/exp handling and
// places the user-safe view under the "data" key, which is the only
// identity payload a token ever contains.
type SessionClaims struct {
	jwt.RegisteredClaims

	// User is the safe projection of the authenticated account.
	User SafeUser `json:"data"`
}
