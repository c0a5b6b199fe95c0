package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "empty api key is allowed", mutate: func(cfg *StructuredConfig) { cfg.Security.APIKey = "" }},
		{name: "empty address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = " " }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.WriteTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "auth-first order", mutate: func(cfg *StructuredConfig) { cfg.Server.MiddlewareOrder = MiddlewareOrderAuthFirst }},
		{name: "unknown order", mutate: func(cfg *StructuredConfig) { cfg.Server.MiddlewareOrder = "" }, wantErr: ErrInvalidMiddlewareOrder},
		{name: "negative rps", mutate: func(cfg *StructuredConfig) { cfg.RateLimit.RPS = -1 }, wantErr: ErrInvalidRateLimitConfigs},
		{name: "rate limit enabled", mutate: func(cfg *StructuredConfig) { cfg.RateLimit.RPS = 5 }},
		{
			name: "rate limit enabled with zero burst",
			mutate: func(cfg *StructuredConfig) {
				cfg.RateLimit.RPS = 5
				cfg.RateLimit.Burst = 0
			},
			wantErr: ErrInvalidRateLimitConfigs,
		},
		{name: "metrics path without slash", mutate: func(cfg *StructuredConfig) { cfg.Metrics.Path = "metrics" }, wantErr: ErrInvalidMetricsConfigs},
		{
			name: "metrics path ignored when disabled",
			mutate: func(cfg *StructuredConfig) {
				cfg.Metrics.Disabled = true
				cfg.Metrics.Path = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRateLimit_Enabled(t *testing.T) {
	assert.False(t, RateLimit{}.Enabled())
	assert.True(t, RateLimit{RPS: 0.5}.Enabled())
}
