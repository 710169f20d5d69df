package ratelimit

import (
	"net/http"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=ratelimit_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an HTTPClient whose requests pass through a Limiter first.
// Transport errors are returned unchanged.
type Client struct {
	HTTP    HTTPClient
	Limiter Limiter
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	return c.HTTP.Do(req)
}
