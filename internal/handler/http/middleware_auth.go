package http

import (
	"context"
	"net/http"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/utils"
	"github.com/opeller/authgate/models"
)

// resolveUser annotates the request with the current user, if any.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ParseToken], and re-reads the account from the
// store so a deleted user cannot keep an orphaned session alive. On
// success the safe user view is stored in the request context under
// [utils.CurrentUserCtxKey].
//
// The middleware never rejects a request. Every failure path leaves the
// request anonymous and continues:
//   - no session cookie: nothing to do
//   - malformed, expired, or tampered token: session cookie is cleared
//   - account no longer exists: session cookie is cleared
//
// Fail-fast enforcement is requireAuth's job, not this one's.
func (h *Handler) resolveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cookie, err := r.Cookie(tokenCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		tokenUser, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected, dropping cookie")
			h.clearTokenCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.CurrentUser(ctx, tokenUser.ID)
		if err != nil {
			log.Debug().Err(err).Int64("id", tokenUser.ID).Msg("session user not found, dropping cookie")
			h.clearTokenCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth guards routes that need an authenticated session. It runs
// after resolveUser; a request that is still anonymous at this point is
// rejected with the 401 envelope.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetCurrentUserFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Msg("unauthenticated request to protected route")
			h.writeErrorResponse(w, r, models.ErrorResponse{
				Title:   titleUnauthorized,
				Message: titleUnauthorized,
				Errors:  []string{titleUnauthorized},
			}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
