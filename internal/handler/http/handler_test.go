package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/opeller/authgate/internal/config"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/service"
	"github.com/opeller/authgate/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.SafeUser, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.SafeUser, error)
	currentUserFn func(ctx context.Context, userID int64) (models.SafeUser, error)
	issueTokenFn  func(ctx context.Context, user models.SafeUser) (string, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.SafeUser, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.SafeUser, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.SafeUser, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (models.SafeUser, error) {
	return m.currentUserFn(ctx, userID)
}

func (m *mockAuthService) IssueToken(ctx context.Context, user models.SafeUser) (string, error) {
	return m.issueTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.SafeUser, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCSRFSignKey = "test-csrf-sign-key"

// testAppConfig returns the App configuration used by handler tests.
// Development environment, so dev-only routes are mounted and error
// responses keep their detail.
func testAppConfig() config.App {
	return config.App{
		Environment:   config.EnvDevelopment,
		TokenSignKey:  "test-token-sign-key",
		TokenDuration: time.Hour,
		CSRFSignKey:   testCSRFSignKey,
	}
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, testAppConfig(), logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorResponse parses the uniform error envelope from a body.
func decodeErrorResponse(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &response))
	return response
}

// cookieByName returns the named Set-Cookie entry from a response, or
// nil when it was not set.
func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// safeUserFixture is a convenience fixture used across multiple tests.
var safeUserFixture = models.SafeUser{
	ID:       42,
	Username: "alice1",
	Email:    "a@example.com",
}
