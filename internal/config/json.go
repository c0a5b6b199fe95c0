package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
// Durations may be written as strings ("15s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Security struct {
		APIKey string `json:"api_key"`
	} `json:"security,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		IdleTimeout     Duration `json:"idle_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		MiddlewareOrder string   `json:"middleware_order"`
	} `json:"server,omitempty"`

	RateLimit struct {
		RPS          float64  `json:"rps"`
		Burst        int      `json:"burst"`
		IdleTTL      Duration `json:"idle_ttl"`
		CleanupEvery Duration `json:"cleanup_every"`
	} `json:"rate_limit,omitempty"`

	Metrics struct {
		Disabled bool   `json:"disabled"`
		Path     string `json:"path"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			Version:  jsonCfg.App.Version,
		},
		Security: Security{
			APIKey: jsonCfg.Security.APIKey,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:     time.Duration(jsonCfg.Server.IdleTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			MiddlewareOrder: jsonCfg.Server.MiddlewareOrder,
		},
		RateLimit: RateLimit{
			RPS:          jsonCfg.RateLimit.RPS,
			Burst:        jsonCfg.RateLimit.Burst,
			IdleTTL:      time.Duration(jsonCfg.RateLimit.IdleTTL),
			CleanupEvery: time.Duration(jsonCfg.RateLimit.CleanupEvery),
		},
		Metrics: Metrics{
			Disabled: jsonCfg.Metrics.Disabled,
			Path:     jsonCfg.Metrics.Path,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
