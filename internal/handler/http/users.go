package http

import (
	"encoding/json"
	"net/http"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/utils"
	"github.com/opeller/authgate/models"
)

// signup creates a new account and immediately establishes a session
// for it, mirroring login: token cookie plus the safe user view.
// Validation failures and duplicate username/email both come back as a
// 400 envelope listing every violated rule.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeErrorResponse(w, r, models.ErrorResponse{
			Title:   titleBadRequest,
			Message: titleBadRequest,
			Errors:  []string{msgInvalidBody},
		}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, request)
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

	log.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user successfully signed up")

	h.setTokenCookie(w, token)
	utils.WriteJSON(w, models.SessionResponse{User: &user}, http.StatusOK)
}
