package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires all routes and middleware and returns the ready-to-serve router.
//
// Middleware order: panic recovery first, then trace-ID propagation, access
// logging, and gzip handling. Auth routes are open; every note route sits
// behind the bearer-token middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// note routes require a verified bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/noteapp/create-note", h.createNote)
		r.Get("/noteapp/get-notes", h.getNotes)
		r.Put("/noteapp/update-note/{id}", h.updateNote)
		r.Delete("/noteapp/delete-note/{id}", h.deleteNote)
		r.Put("/noteapp/toggle-favorite/{id}", h.toggleFavorite)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
