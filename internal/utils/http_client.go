package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every vendor request.
const UserAgent = "kenv-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://kenv.uffelmann.me", 30*time.Second)
//	resp, err := client.R().Get("/api/tools")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient rooted at baseURL. A positive
// timeout bounds every request made through the client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
