package http

import (
	"encoding/json"
	"net/http"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/utils"
	"github.com/opeller/authgate/models"
)

// restoreSession reports the current session state. An authenticated
// request gets back its safe user view, an anonymous one an empty
// object; either way the anti-forgery cookie is refreshed so the client
// always holds a valid one after session restore.
func (h *Handler) restoreSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.setCSRFCookie(w); err != nil {
		log.Err(err).Msg("minting CSRF token failed")
		h.serverError(w, r, err)
		return
	}

	var response models.SessionResponse
	if user, ok := utils.GetCurrentUserFromContext(r.Context()); ok {
		response.User = &user
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// login authenticates by username-or-email credential and password. On
// success a fresh session token is issued and set as the HTTP-only
// cookie; on any failure the response is one generic 401 and no cookie
// is touched.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorResponse(w, r, models.ErrorResponse{
			Title:   titleBadRequest,
			Message: titleBadRequest,
			Errors:  []string{msgInvalidBody},
		}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.serverError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	h.setTokenCookie(w, token)
	utils.WriteJSON(w, models.SessionResponse{User: &user}, http.StatusOK)
}

// logout clears the session cookie. It is idempotent: logging out
// without a session still answers with success.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "success"}, http.StatusOK)
}

// restoreCSRF hands the anti-forgery cookie to clients running on a
// separate development origin. The route is not mounted in production.
func (h *Handler) restoreCSRF(w http.ResponseWriter, r *http.Request) {
	if err := h.setCSRFCookie(w); err != nil {
		logger.FromRequest(r).Err(err).Msg("minting CSRF token failed")
		h.serverError(w, r, err)
		return
	}

	utils.WriteJSON(w, struct{}{}, http.StatusCreated)
}
