package http

import (
	"net/http"

	"github.com/opeller/authgate/internal/utils"
)

const (
	// tokenCookieName is the HTTP-only cookie carrying the signed session token.
	tokenCookieName = "token"

	// csrfCookieName is the JS-readable cookie carrying the anti-forgery token.
	csrfCookieName = "XSRF-TOKEN"

	// csrfHeaderName is the request header that must mirror csrfCookieName
	// on mutating calls.
	csrfHeaderName = "XSRF-Token"
)

// setTokenCookie attaches the signed session token as an HTTP-only
// cookie. The cookie lives exactly as long as the token itself; in
// production it is additionally marked Secure and SameSite=Lax.
func (h *Handler) setTokenCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.TokenDuration.Seconds()),
		HttpOnly: true,
	}
	if h.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, cookie)
}

// clearTokenCookie expires the session cookie on the client.
func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// setCSRFCookie mints a fresh signed anti-forgery token and exposes it
// in a readable cookie so the client can mirror it into the
// "XSRF-Token" header on mutating requests.
func (h *Handler) setCSRFCookie(w http.ResponseWriter) error {
	token, err := utils.MintCSRFToken(h.cfg.CSRFSignKey)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:  csrfCookieName,
		Value: token,
		Path:  "/",
	}
	if h.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, cookie)
	return nil
}
