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
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/me", h.me)
	})

	router.Route("/api/cars", func(r chi.Router) {
		r.Get("/", h.listCars)
		r.Get("/{id}", h.getCar)

		r.Group(func(r chi.Router) {
			if !h.allowAnonymousWrites {
				r.Use(h.auth)
			}
			r.Post("/", h.createCar)
			r.Put("/{id}", h.updateCar)
			r.Delete("/{id}", h.deleteCar)
			r.Post("/{id}/trips", h.addTrip)
		})
	})

	return router
}
