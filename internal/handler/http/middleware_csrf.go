package http

import (
	"net/http"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/utils"
	"github.com/opeller/authgate/models"
)

// checkCSRF enforces the double-submit anti-forgery check on every
// state-changing request.
//
// Mutating methods must carry the "XSRF-Token" header, its value must
// be a token this server signed, and it must equal the "XSRF-TOKEN"
// cookie copy. Any mismatch is rejected with a 403 envelope before the
// request reaches a handler. Safe methods pass through untouched.
func (h *Handler) checkCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		headerToken := r.Header.Get(csrfHeaderName)
		if headerToken == "" {
			log.Debug().Msg("mutating request without CSRF header")
			h.rejectCSRF(w, r)
			return
		}

		cookie, err := r.Cookie(csrfCookieName)
		if err != nil {
			log.Debug().Msg("mutating request without CSRF cookie")
			h.rejectCSRF(w, r)
			return
		}

		if !utils.VerifyCSRFToken(headerToken, h.cfg.CSRFSignKey) {
			log.Debug().Msg("CSRF token signature rejected")
			h.rejectCSRF(w, r)
			return
		}

		if !utils.CSRFTokensMatch(headerToken, cookie.Value) {
			log.Debug().Msg("CSRF header and cookie tokens differ")
			h.rejectCSRF(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) rejectCSRF(w http.ResponseWriter, r *http.Request) {
	h.writeErrorResponse(w, r, models.ErrorResponse{
		Title:   titleForbidden,
		Message: msgInvalidCSRFToken,
		Errors:  []string{msgInvalidCSRFToken},
	}, http.StatusForbidden)
}
