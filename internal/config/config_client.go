package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the users API
	// (e.g. "localhost:8080" or "http://api.local").
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// APIKey is sent as X-API-Key on every request.
	// Env: CLIENT_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the API address, key and timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, CLIENT_* environment variables and the global flags in
// os.Args. It also returns the arguments left after the flags, which name
// the command to run.
func GetClientConfig() (*ClientConfig, []string, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	var flagCfg ClientConfig
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "s", "", "Users API address")
	fs.StringVar(&flagCfg.Adapter.APIKey, "k", "", "API key")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for _, layer := range []*ClientConfig{envCfg, &flagCfg} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
