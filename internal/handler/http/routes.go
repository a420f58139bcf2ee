package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.cors.Handler)
	router.Use(h.withTraceID, withLogging, withGZip)

	router.Get("/", h.health)
	router.Get("/version", h.getServerVersion)
	router.Post("/upload", h.upload)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
