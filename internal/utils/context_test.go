package utils

import (
	"context"
	"testing"

	"github.com/opeller/authgate/models"
	"github.com/stretchr/testify/assert"
)

// TestGetCurrentUserFromContext_Present verifies retrieval of a stored user.
func TestGetCurrentUserFromContext_Present(t *testing.T) {
	want := models.SafeUser{ID: 7, Username: "alice1", Email: "a@example.com"}
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, want)

	got, ok := GetCurrentUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

// TestGetCurrentUserFromContext_Absent verifies the anonymous case.
func TestGetCurrentUserFromContext_Absent(t *testing.T) {
	_, ok := GetCurrentUserFromContext(context.Background())
	assert.False(t, ok)
}

// TestGetCurrentUserFromContext_WrongType verifies that a foreign value
// under the same key does not masquerade as a user.
func TestGetCurrentUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, "not-a-user")
	_, ok := GetCurrentUserFromContext(ctx)
	assert.False(t, ok)
}
