package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the plaintext password.
//
// bcrypt embeds a random salt in every digest, so hashing the same
// password twice yields two different digests. The cost factor is the
// library default; the resulting digest is always 60 bytes.
func HashPassword(password string) ([]byte, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return digest, nil
}

// VerifyPassword reports whether the plaintext password matches the
// stored bcrypt digest.
//
// A malformed or truncated digest makes the comparison fail closed:
// the function returns false and never panics or surfaces an error.
func VerifyPassword(password string, digest []byte) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(password)) == nil
}
