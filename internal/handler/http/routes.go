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

	// compressible documents
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/feed", h.getFeed)
		r.Get("/usage", h.submitUsage)
	})

	// images are served as stored
	router.Get("/images/{id}", h.getImage)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
