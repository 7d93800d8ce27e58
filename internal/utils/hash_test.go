package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashPassword_RoundTrip verifies that a hashed password verifies
// against its own plaintext.
func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("secret1", digest))
}

// TestHashPassword_Salted verifies that hashing the same plaintext twice
// produces two different digests because of the embedded random salt.
func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

// TestHashPassword_DigestLength verifies the fixed 60-byte bcrypt output.
func TestHashPassword_DigestLength(t *testing.T) {
	digest, err := HashPassword("whatever")
	require.NoError(t, err)
	assert.Len(t, digest, 60)
}

// TestVerifyPassword_WrongPassword verifies that a wrong plaintext fails.
func TestVerifyPassword_WrongPassword(t *testing.T) {
	digest, err := HashPassword("right-password")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong-password", digest))
}

// TestVerifyPassword_MalformedDigest verifies that malformed digests make
// verification return false instead of panicking or erroring out.
func TestVerifyPassword_MalformedDigest(t *testing.T) {
	cases := []struct {
		name   string
		digest []byte
	}{
		{name: "empty", digest: nil},
		{name: "too short", digest: []byte("$2a$10$short")},
		{name: "not bcrypt at all", digest: []byte("plaintext-not-a-digest")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("anything", tc.digest))
		})
	}
}
