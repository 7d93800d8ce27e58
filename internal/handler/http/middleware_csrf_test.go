package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opeller/authgate/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mintedCSRFToken returns a token signed with the test CSRF key.
func mintedCSRFToken(t *testing.T) string {
	t.Helper()
	token, err := utils.MintCSRFToken(testCSRFSignKey)
	require.NoError(t, err)
	return token
}

func csrfRequest(method, headerToken, cookieToken string) *http.Request {
	req := httptest.NewRequest(method, "/api/session", nil)
	if headerToken != "" {
		req.Header.Set(csrfHeaderName, headerToken)
	}
	if cookieToken != "" {
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: cookieToken})
	}
	return req
}

// TestCheckCSRF_SafeMethodsPass verifies GET requests are never
// subjected to the double-submit check.
func TestCheckCSRF_SafeMethodsPass(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &nextRecorder{}

	rec := httptest.NewRecorder()
	h.checkCSRF(next.handler()).ServeHTTP(rec, csrfRequest(http.MethodGet, "", ""))

	assert.True(t, next.called)
}

// TestCheckCSRF_ValidPairPasses verifies a signed token present in both
// header and cookie lets a mutating request through.
func TestCheckCSRF_ValidPairPasses(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &nextRecorder{}

	token := mintedCSRFToken(t)
	rec := httptest.NewRecorder()
	h.checkCSRF(next.handler()).ServeHTTP(rec, csrfRequest(http.MethodPost, token, token))

	assert.True(t, next.called)
}

// TestCheckCSRF_Rejections verifies every failure mode produces the 403
// envelope before any handler logic runs.
func TestCheckCSRF_Rejections(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	token := mintedCSRFToken(t)
	otherToken := mintedCSRFToken(t)

	tests := []struct {
		name        string
		headerToken string
		cookieToken string
	}{
		{name: "missing header", headerToken: "", cookieToken: token},
		{name: "missing cookie", headerToken: token, cookieToken: ""},
		{name: "unsigned header token", headerToken: "forged.value", cookieToken: "forged.value"},
		{name: "header and cookie differ", headerToken: token, cookieToken: otherToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &nextRecorder{}
			rec := httptest.NewRecorder()

			h.checkCSRF(next.handler()).ServeHTTP(rec, csrfRequest(http.MethodPost, tt.headerToken, tt.cookieToken))

			assert.False(t, next.called)
			require.Equal(t, http.StatusForbidden, rec.Code)

			response := decodeErrorResponse(t, rec.Body.Bytes())
			assert.Equal(t, "Forbidden", response.Title)
		})
	}
}

// TestCheckCSRF_TokenFromAnotherKey verifies a token signed by a
// different deployment is rejected even when header and cookie match.
func TestCheckCSRF_TokenFromAnotherKey(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &nextRecorder{}

	foreign, err := utils.MintCSRFToken("some-other-key")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.checkCSRF(next.handler()).ServeHTTP(rec, csrfRequest(http.MethodDelete, foreign, foreign))

	assert.False(t, next.called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
