// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Middleware orderings accepted by [Server.MiddlewareOrder].
const (
	// MiddlewareOrderLogFirst puts the request logger outside the API key
	// gate, so rejected (401) attempts are logged too.
	MiddlewareOrderLogFirst = "log-first"

	// MiddlewareOrderAuthFirst puts the API key gate outside the request
	// logger, so only authorized requests are logged.
	MiddlewareOrderAuthFirst = "auth-first"
)

// StructuredConfig is the top-level configuration container for the
// user-management-api server. It aggregates all sub-configurations and is
// populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: log level and build version.
	App App `envPrefix:"APP_"`

	// Security holds the shared API key required on non-GET requests.
	Security Security `envPrefix:"SECURITY_"`

	// Server holds network address, timeouts and middleware ordering of the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds per-client token bucket settings.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Metrics holds Prometheus exposition settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Security holds authentication settings.
type Security struct {
	// APIKey is the shared secret expected in the X-API-Key header of every
	// non-GET request. When empty, every non-GET request is rejected.
	// Env: SECURITY_API_KEY
	APIKey string `env:"API_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080" or ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadTimeout bounds reading an entire request, including the body.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing the response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// IdleTimeout bounds keep-alive connections waiting for the next request.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MiddlewareOrder is either MiddlewareOrderLogFirst or
	// MiddlewareOrderAuthFirst.
	// Env: SERVER_MIDDLEWARE_ORDER
	MiddlewareOrder string `env:"MIDDLEWARE_ORDER"`
}

// RateLimit holds per-client token bucket settings.
type RateLimit struct {
	// RPS is the sustained number of requests per second allowed per client.
	// Zero disables rate limiting.
	// Env: RATE_LIMIT_RPS
	RPS float64 `env:"RPS"`

	// Burst is the bucket size per client.
	// Env: RATE_LIMIT_BURST
	Burst int `env:"BURST"`

	// IdleTTL is how long an unused client limiter is kept in memory.
	// Env: RATE_LIMIT_IDLE_TTL
	IdleTTL time.Duration `env:"IDLE_TTL"`

	// CleanupEvery is the period of the idle limiter cleanup worker.
	// Env: RATE_LIMIT_CLEANUP_EVERY
	CleanupEvery time.Duration `env:"CLEANUP_EVERY"`
}

// Enabled reports whether rate limiting is switched on.
func (r RateLimit) Enabled() bool {
	return r.RPS > 0
}

// Metrics holds Prometheus exposition settings.
type Metrics struct {
	// Disabled switches off both the instrumentation middleware and the
	// exposition endpoint.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`

	// Path is the route serving the Prometheus exposition format.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			Version:  "dev",
		},
		Server: Server{
			HTTPAddress:     ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MiddlewareOrder: MiddlewareOrderLogFirst,
		},
		RateLimit: RateLimit{
			Burst:        10,
			IdleTTL:      15 * time.Minute,
			CleanupEvery: 2 * time.Minute,
		},
		Metrics: Metrics{
			Path: "/metrics",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources, reading flags from os.Args.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
