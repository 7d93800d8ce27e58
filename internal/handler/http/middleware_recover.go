package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/models"
)

// withRecover converts a panicking handler into a 500 envelope instead
// of tearing down the connection. The panic value and stack are always
// logged; the response carries them only in development.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := debug.Stack()
			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", stack).
				Msg("panic recovered in handler")

			response := models.ErrorResponse{
				Title:   titleServerError,
				Message: msgServerError,
				Errors:  []string{msgServerError},
			}
			if !h.cfg.IsProduction() {
				response.Message = fmt.Sprintf("%v", rec)
				response.Stack = string(stack)
			}

			h.writeErrorResponse(w, r, response, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
