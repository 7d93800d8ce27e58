package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opeller/authgate/models"
)

// Typed session token failures. Callers treat all three identically
// (drop the session), the distinction exists for diagnostics.
var (
	// ErrTokenMalformed is returned when the raw token cannot be parsed
	// as a JWT at all.
	ErrTokenMalformed = errors.New("session token is malformed")

	// ErrTokenExpired is returned when the token's exp claim lies in the past.
	ErrTokenExpired = errors.New("session token is expired")

	// ErrTokenSignatureInvalid is returned when the token's signature does
	// not verify against the process-wide sign key.
	ErrTokenSignatureInvalid = errors.New("session token signature mismatch")
)

// IssueSessionToken creates a signed HMAC-SHA256 session token for the
// given user.
//
// The claims carry the user-safe view under the "data" key plus the
// standard IssuedAt and ExpiresAt claims; expiry is now + tokenDuration.
//
// Returns an error if the sign key is empty, the duration is zero, or
// signing fails.
func IssueSessionToken(user models.SafeUser, tokenDuration time.Duration, signKey string) (string, error) {
	if signKey == "" || tokenDuration == 0 {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		User: user,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken validates the raw session token and extracts the
// embedded user-safe view.
//
// Validation includes signature verification with the sign key and the
// expiry check performed by the JWT parser. Failures are normalised to
// the typed sentinels [ErrTokenMalformed], [ErrTokenExpired], and
// [ErrTokenSignatureInvalid].
func ParseSessionToken(tokenString, signKey string) (models.SafeUser, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.SafeUser{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.SafeUser{}, ErrTokenSignatureInvalid
		default:
			return models.SafeUser{}, ErrTokenMalformed
		}
	}

	if claims.User.ID == 0 {
		return models.SafeUser{}, ErrTokenMalformed
	}

	return claims.User, nil
}
