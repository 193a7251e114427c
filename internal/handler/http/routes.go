package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
		r.Get("/health", h.health)
	})

	// session-token routes
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Post("/auth/logout", h.logout)

		r.Post("/keys/create", h.createKey)
		r.Get("/keys", h.listKeys)
		r.Delete("/keys/{keyID}", h.revokeKey)

		r.Get("/protected/user-only", h.userOnly)
	})

	// api-key routes
	router.Group(func(r chi.Router) {
		r.Use(h.requireService)

		r.Get("/protected/service-only", h.serviceOnly)
	})

	// either scheme; the api key wins when both are presented
	router.Group(func(r chi.Router) {
		r.Use(h.requireFlexible)

		r.Get("/protected/flexible", h.flexible)
	})

	return router
}
