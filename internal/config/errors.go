package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, empty address or negative timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMiddlewareOrder indicates an unknown middleware ordering.
	ErrInvalidMiddlewareOrder = errors.New("invalid middleware order")
	// ErrInvalidRateLimitConfigs indicates invalid rate limit settings
	// (for example, negative RPS or zero burst with RPS enabled).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidMetricsConfigs indicates an invalid metrics route.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
