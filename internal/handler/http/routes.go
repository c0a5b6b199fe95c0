package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/user-management-api/internal/config"
)

// Init builds the router.
//
// Middleware, outermost first: error trap, trace id, metrics, then access
// logging and API key check in the configured order, rate limiting and
// gzip. With auth-first, requests rejected by the key check are not logged.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withErrorTrap, h.withTraceID)
	if h.metrics != nil {
		router.Use(h.metrics.InstrumentHandler)
	}

	switch h.middlewareOrder {
	case config.MiddlewareOrderAuthFirst:
		router.Use(h.withAPIKey, h.withLogging)
	default:
		router.Use(h.withLogging, h.withAPIKey)
	}

	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}
	router.Use(withGZip)

	router.Get("/healthz", h.health)
	router.Get("/api/version/", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	router.Get("/api/users", h.handle(h.listUsers))
	router.Post("/api/users", h.handle(h.createUser))
	router.Get("/api/users/{id}", h.handle(h.getUser))
	router.Put("/api/users/{id}", h.handle(h.updateUser))
	router.Delete("/api/users/{id}", h.handle(h.deleteUser))

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
