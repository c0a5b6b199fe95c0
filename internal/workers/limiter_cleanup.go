// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/ratelimit"
)

// LimiterCleanup periodically drops idle client limiters from a
// [ratelimit.Store].
type LimiterCleanup struct {
	store  *ratelimit.Store
	every  time.Duration
	logger *logger.Logger
}

func NewLimiterCleanup(store *ratelimit.Store, every time.Duration, logger *logger.Logger) *LimiterCleanup {
	return &LimiterCleanup{store: store, every: every, logger: logger}
}

func (c *LimiterCleanup) Run(ctx context.Context) {
	ticker := time.NewTicker(c.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Msg("limiter cleanup stopped")
			return
		case <-ticker.C:
			if removed := c.store.Cleanup(); removed > 0 {
				c.logger.Debug().
					Int("removed", removed).
					Int("remaining", c.store.Len()).
					Msg("idle rate limiters removed")
			}
		}
	}
}
