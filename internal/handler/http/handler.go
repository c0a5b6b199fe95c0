package http

import (
	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/metrics"
	"github.com/MKhiriev/user-management-api/internal/ratelimit"
	"github.com/MKhiriev/user-management-api/internal/service"
)

type Handler struct {
	services *service.Services

	apiKey          string
	middlewareOrder string

	// limiter is nil when rate limiting is disabled.
	limiter *ratelimit.Store
	// metrics is nil when metrics are disabled.
	metrics     *metrics.Metrics
	metricsPath string

	logger *logger.Logger
}

// Option configures optional Handler dependencies.
type Option func(*Handler)

// WithRateLimiter enables per-client rate limiting backed by store.
func WithRateLimiter(store *ratelimit.Store) Option {
	return func(h *Handler) { h.limiter = store }
}

// WithMetrics enables request metrics and serves them on path.
func WithMetrics(m *metrics.Metrics, path string) Option {
	return func(h *Handler) {
		h.metrics = m
		h.metricsPath = path
	}
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:        services,
		apiKey:          cfg.Security.APIKey,
		middlewareOrder: cfg.Server.MiddlewareOrder,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().
		Str("middleware_order", h.middlewareOrder).
		Bool("rate_limit", h.limiter != nil).
		Bool("metrics", h.metrics != nil).
		Msg("http handler created")

	return h
}
