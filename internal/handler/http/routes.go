package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
// Public routes: registration, login, /about and /ping.
// Everything else requires a valid bearer token.
func (h *Handler) Init() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/about", h.about)
		r.Get("/ping", h.ping)
	})

	// protected
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listUsers)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	return router
}
