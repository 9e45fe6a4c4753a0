package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient(
//	    utils.WithBaseURL("http://billing:8080"),
//	    utils.WithTimeout(5*time.Second),
//	)
//	resp, err := client.R().Get("/api/health")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty.Client.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the base URL prepended to relative request paths.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request. Zero keeps resty's default (no timeout).
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithRequestMiddleware registers m to run before every request is sent.
func WithRequestMiddleware(m resty.RequestMiddleware) HTTPClientOption {
	return func(c *resty.Client) {
		c.OnBeforeRequest(m)
	}
}

// NewHTTPClient creates an HTTPClient with its own resty.Client, applying
// opts in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
