package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientConfig_Defaults(t *testing.T) {
	cfg, rest, err := loadClientConfig([]string{"list"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Adapter.APIKey)
	assert.Equal(t, []string{"list"}, rest)
}

func TestLoadClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CLIENT_SERVER_ADDRESS", "http://env.local")
	t.Setenv("CLIENT_API_KEY", "env-key")

	cfg, rest, err := loadClientConfig([]string{"-k", "flag-key", "-t", "2s", "get", "42"})
	require.NoError(t, err)

	assert.Equal(t, "http://env.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "flag-key", cfg.Adapter.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"get", "42"}, rest)
}

func TestLoadClientConfig_UnknownFlag(t *testing.T) {
	_, _, err := loadClientConfig([]string{"-x"})
	assert.Error(t, err)
}

func TestClientConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ClientConfig{}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "x"}}).validate(), ErrInvalidAdapterConfigs)
	assert.NoError(t, (&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "x", RequestTimeout: time.Second}}).validate())
}
