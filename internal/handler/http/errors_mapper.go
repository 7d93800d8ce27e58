package http

import (
	"errors"
	"net/http"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/service"
	"github.com/opeller/authgate/models"
)

// handleError converts a service-layer error into its envelope:
//
//   - *service.ValidationError  → 400, every violated rule listed
//   - service.ErrInvalidCredentials → 401, one deliberately generic message
//   - anything else → 500, opaque in production
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationError *service.ValidationError

	switch {
	case errors.As(err, &validationError):
		h.writeErrorResponse(w, r, models.ErrorResponse{
			Title:   titleBadRequest,
			Message: titleBadRequest,
			Errors:  validationError.Messages,
		}, http.StatusBadRequest)

	case errors.Is(err, service.ErrInvalidCredentials):
		h.writeErrorResponse(w, r, models.ErrorResponse{
			Title:   titleLoginFailed,
			Message: titleLoginFailed,
			Errors:  []string{"The provided credentials were invalid."},
		}, http.StatusUnauthorized)

	default:
		h.serverError(w, r, err)
	}
}

// serverError reports an unexpected fault. The underlying error is
// logged server-side; the body reveals it only in development.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed with unexpected error")

	response := models.ErrorResponse{
		Title:   titleServerError,
		Message: msgServerError,
		Errors:  []string{msgServerError},
	}
	if !h.cfg.IsProduction() && err != nil {
		response.Message = err.Error()
	}

	h.writeErrorResponse(w, r, response, http.StatusInternalServerError)
}
