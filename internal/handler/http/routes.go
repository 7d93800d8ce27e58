package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(h.checkCSRF)
	router.Use(h.resolveUser)

	router.Route("/api", func(r chi.Router) {
		r.Get("/session", h.restoreSession)
		r.Post("/session", h.login)
		r.Delete("/session", h.logout)

		r.Post("/users", h.signup)

		// in development the frontend runs on its own origin and has to
		// fetch the anti-forgery cookie explicitly
		if !h.cfg.IsProduction() {
			r.Get("/csrf/restore", h.restoreCSRF)
		}
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
