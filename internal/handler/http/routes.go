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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/auth/google", h.oauth)
		r.Get("/api/auth/signout", h.signOut)

		r.Get("/api/listing/search", h.searchListings)
		r.Get("/api/listing/{id}", h.getListing)
	})

	// routes requiring a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/{id}", h.getUser)
		r.Post("/api/user/update/{id}", h.updateUser)
		r.Delete("/api/user/update/{id}", h.deleteUser)
		// kept as an alias for older clients
		r.Delete("/api/user/delete/{id}", h.deleteUser)
		r.Get("/api/user/listings/{id}", h.userListings)

		r.Post("/api/listing/create", h.createListing)
		r.Post("/api/listing/update/{id}", h.updateListing)
		r.Delete("/api/listing/delete/{id}", h.deleteListing)
	})

	return router
}
