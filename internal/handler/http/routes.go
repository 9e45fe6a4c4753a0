package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	if h.guard.Enabled() && h.patterns.Active() {
		router.Use(h.internalAuth)
	} else {
		h.logger.Warn().Msg("internal auth is not wired onto any route")
	}

	router.Get("/api/health", h.getHealth)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/internal", func(r chi.Router) {
		r.Post("/echo", h.echo)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
