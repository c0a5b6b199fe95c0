package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewAPIClient returns an HTTPClient preconfigured for the users API:
// base URL, timeout, JSON accept header and, when apiKey is not empty,
// the X-API-Key header on every request.
func NewAPIClient(baseURL string, timeout time.Duration, apiKey string) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}

	return client
}
