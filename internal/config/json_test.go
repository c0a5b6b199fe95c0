package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"log_level": "error", "version": "9.9.9"},
		"security": {"api_key": "json-key"},
		"server": {
			"http_address": ":7070",
			"read_timeout": "1s",
			"write_timeout": 2000000000,
			"idle_timeout": "3s",
			"shutdown_timeout": "4s",
			"middleware_order": "auth-first"
		},
		"rate_limit": {"rps": 1.5, "burst": 3, "idle_ttl": "5m", "cleanup_every": "1m"},
		"metrics": {"disabled": true, "path": "/prom"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "json-key", cfg.Security.APIKey)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 4*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, MiddlewareOrderAuthFirst, cfg.Server.MiddlewareOrder)
	assert.Equal(t, 1.5, cfg.RateLimit.RPS)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.IdleTTL)
	assert.Equal(t, time.Minute, cfg.RateLimit.CleanupEvery)
	assert.True(t, cfg.Metrics.Disabled)
	assert.Equal(t, "/prom", cfg.Metrics.Path)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"server": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"server": {"read_timeout": "soon"}}`))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
