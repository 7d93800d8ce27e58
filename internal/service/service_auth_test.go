package service

import (
	"context"
	"testing"
	"time"

	"github.com/opeller/authgate/internal/config"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/store"
	"github.com/opeller/authgate/internal/utils"
	"github.com/opeller/authgate/internal/workers"
	"github.com/opeller/authgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn           func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn         func(ctx context.Context, id int64) (models.User, error)
	findUserByCredentialFn func(ctx context.Context, credential string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

func (m *mockUserRepository) FindUserByCredential(ctx context.Context, credential string) (models.User, error) {
	return m.findUserByCredentialFn(ctx, credential)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestAuthService(t *testing.T, repo store.UserRepository) AuthService {
	t.Helper()
	pool := workers.NewPool(1)
	t.Cleanup(pool.Close)

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, pool, logger.Nop())
}

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Username: "alice1",
		Email:    "a@example.com",
		Password: "secret1",
	}
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.ID = 1
			return user, nil
		},
	}
	auth := newTestAuthService(t, repo)

	safe, err := auth.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, models.SafeUser{ID: 1, Username: "alice1", Email: "a@example.com"}, safe)

	// the store received a real bcrypt digest, not the plaintext
	assert.NotEqual(t, []byte("secret1"), persisted.PasswordHash)
	assert.True(t, utils.VerifyPassword("secret1", persisted.PasswordHash))
}

func TestSignup_CollectsAllViolations(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("CreateUser must not be called for invalid input")
			return models.User{}, nil
		},
	}
	auth := newTestAuthService(t, repo)

	_, err := auth.Signup(context.Background(), models.SignupRequest{
		Username: "ab",          // too short
		Email:    "not-an-email",
		Password: "short",       // too short
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 3, "every violated rule must be reported at once")
	assert.Contains(t, verr.Messages, msgUsernameLength)
	assert.Contains(t, verr.Messages, msgEmailInvalid)
	assert.Contains(t, verr.Messages, msgPasswordLength)
}

func TestSignup_UsernameMustNotBeEmail(t *testing.T) {
	auth := newTestAuthService(t, &mockUserRepository{})

	req := validSignup()
	req.Username = "alice@example.com"

	_, err := auth.Signup(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, msgUsernameNotEmail)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	auth := newTestAuthService(t, repo)

	_, err := auth.Signup(context.Background(), validSignup())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"User with that email already exists"}, verr.Messages)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	auth := newTestAuthService(t, repo)

	_, err := auth.Signup(context.Background(), validSignup())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"User with that username already exists"}, verr.Messages)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	digest, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByCredentialFn: func(_ context.Context, credential string) (models.User, error) {
			assert.Equal(t, "alice1", credential)
			return models.User{
				ID:           7,
				Username:     "alice1",
				Email:        "a@example.com",
				PasswordHash: digest,
			}, nil
		},
	}
	auth := newTestAuthService(t, repo)

	safe, err := auth.Login(context.Background(), models.LoginRequest{
		Credential: "alice1",
		Password:   "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SafeUser{ID: 7, Username: "alice1", Email: "a@example.com"}, safe)
}

func TestLogin_UnknownCredential(t *testing.T) {
	repo := &mockUserRepository{
		findUserByCredentialFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	auth := newTestAuthService(t, repo)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Credential: "ghost",
		Password:   "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	digest, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByCredentialFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{ID: 7, Username: "alice1", PasswordHash: digest}, nil
		},
	}
	auth := newTestAuthService(t, repo)

	_, err = auth.Login(context.Background(), models.LoginRequest{
		Credential: "alice1",
		Password:   "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"wrong password must be indistinguishable from unknown credential")
}

func TestLogin_MissingFields(t *testing.T) {
	auth := newTestAuthService(t, &mockUserRepository{})

	_, err := auth.Login(context.Background(), models.LoginRequest{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, msgCredentialNeeded)
	assert.Contains(t, verr.Messages, msgPasswordNeeded)
}

// ─────────────────────────────────────────────
// Tokens and current user
// ─────────────────────────────────────────────

func TestIssueToken_ParseToken_RoundTrip(t *testing.T) {
	auth := newTestAuthService(t, &mockUserRepository{})
	user := models.SafeUser{ID: 7, Username: "alice1", Email: "a@example.com"}

	token, err := auth.IssueToken(context.Background(), user)
	require.NoError(t, err)

	parsed, err := auth.ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user, parsed)
}

func TestParseToken_Invalid(t *testing.T) {
	auth := newTestAuthService(t, &mockUserRepository{})

	_, err := auth.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, utils.ErrTokenMalformed)
}

func TestCurrentUser_Found(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			assert.Equal(t, int64(7), id)
			return models.User{ID: 7, Username: "alice1", Email: "a@example.com"}, nil
		},
	}
	auth := newTestAuthService(t, repo)

	safe, err := auth.CurrentUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.SafeUser{ID: 7, Username: "alice1", Email: "a@example.com"}, safe)
}

func TestCurrentUser_Gone(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	auth := newTestAuthService(t, repo)

	_, err := auth.CurrentUser(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
