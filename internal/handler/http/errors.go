package http

import (
	"net/http"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/utils"
	"github.com/opeller/authgate/models"
)

// Envelope titles shared across the error taxonomy. Every failure the
// API reports uses one of these in the "title" field.
const (
	titleBadRequest   = "Bad request."
	titleLoginFailed  = "Login failed"
	titleUnauthorized = "Unauthorized"
	titleForbidden    = "Forbidden"
	titleNotFound     = "Resource Not Found"
	titleServerError  = "Server Error"
)

const (
	msgInvalidBody      = "Invalid request body."
	msgInvalidCSRFToken = "Invalid CSRF token."
	msgNotFound         = "The requested resource couldn't be found."
	msgServerError      = "Internal server error."
)

// writeErrorResponse is the terminal formatter for every failure: all
// error paths funnel here so clients always receive the same envelope
// shape. The stack field is stripped outside development.
func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, response models.ErrorResponse, statusCode int) {
	if h.cfg.IsProduction() {
		response.Stack = ""
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing error response failed")
	}
}

// notFound answers every unmatched route and method with the uniform
// 404 envelope.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeErrorResponse(w, r, models.ErrorResponse{
		Title:   titleNotFound,
		Message: msgNotFound,
		Errors:  []string{msgNotFound},
	}, http.StatusNotFound)
}
