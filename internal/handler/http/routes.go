package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		withProcessTime,
		h.withMetrics,
		h.withCORS(),
		withGZip,
	)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/", h.apiInfo)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			for _, resource := range h.catalog.Resources() {
				r.Get("/"+resource.Name, h.listMeasurements(resource))
				r.Get("/"+resource.Name+"/", h.listMeasurements(resource))
				r.Get("/"+resource.Name+"/{id}", h.getMeasurement(resource))
			}

			r.Get("/views", h.listViews)
		})

		// authorization depends on the view descriptor
		r.Get("/views/{dataset}/{metric}/{period}", h.getView)
	})

	return router
}
