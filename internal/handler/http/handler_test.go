package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/metrics"
	"github.com/MKhiriev/user-management-api/internal/ratelimit"
	"github.com/MKhiriev/user-management-api/internal/service"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresConfiguration(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, testConfig(config.MiddlewareOrderAuthFirst), log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, testAPIKey, h.apiKey)
	assert.Equal(t, config.MiddlewareOrderAuthFirst, h.middlewareOrder)
	assert.Nil(t, h.limiter)
	assert.Nil(t, h.metrics)
}

func TestNewHandler_Options(t *testing.T) {
	limiter := ratelimit.NewStore(1, 1, time.Minute)
	m := metrics.New()

	h := NewHandler(&service.Services{}, testConfig(config.MiddlewareOrderLogFirst), logger.Nop(),
		WithRateLimiter(limiter),
		WithMetrics(m, "/internal/metrics"),
	)

	assert.Same(t, limiter, h.limiter)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, "/internal/metrics", h.metricsPath)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, testConfig(config.MiddlewareOrderLogFirst), logger.Nop())
	h2 := NewHandler(&service.Services{}, testConfig(config.MiddlewareOrderLogFirst), logger.Nop())

	assert.NotSame(t, h1, h2)
}
