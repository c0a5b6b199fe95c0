// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty API key is accepted: the server then rejects every non-GET
// request, which is a safe if unusual deployment.
func (cfg *StructuredConfig) validate() error {
	server := cfg.Server
	if strings.TrimSpace(server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if server.ReadTimeout < 0 || server.WriteTimeout < 0 || server.IdleTimeout < 0 || server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	switch server.MiddlewareOrder {
	case MiddlewareOrderLogFirst, MiddlewareOrderAuthFirst:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMiddlewareOrder, server.MiddlewareOrder)
	}

	limit := cfg.RateLimit
	if limit.RPS < 0 {
		return fmt.Errorf("%w: negative rps", ErrInvalidRateLimitConfigs)
	}
	if limit.Enabled() && (limit.Burst < 1 || limit.IdleTTL <= 0 || limit.CleanupEvery <= 0) {
		return fmt.Errorf("%w: burst, idle ttl and cleanup period must be positive", ErrInvalidRateLimitConfigs)
	}

	if !cfg.Metrics.Disabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("%w: path must start with '/'", ErrInvalidMetricsConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
