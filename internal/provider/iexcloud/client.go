package iexcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"

	"quickstocks/internal/provider"
)

const baseURL = "https://cloud.iexapis.com/v1"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=iexcloud_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the IEX Cloud API. It serves quotes and logos.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs requests; pass a throttled client to respect quotas.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
}

// Option is a configuration option for the IEX Cloud client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// New creates a new IEX Cloud client. The token is sent as a query parameter.
func New(token string, options ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
	}
	if token != "" {
		// https://iexcloud.io/docs/api/#authentication
		c.query.Add("token", token)
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s%s?%s", c.baseURL, path, maps.Clone(c.query).Encode())
}

// get performs a GET against rawURL and returns the response for a 2xx status.
// Failures are classified; a 404 means the symbol is unknown upstream.
func (c *Client) get(ctx context.Context, op string, symbol provider.Symbol, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, provider.Networking(op, symbol, fmt.Errorf("creating request: %w", provider.StripQuery(err, "token")))
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Networking(op, symbol, fmt.Errorf("performing request: %w", provider.StripQuery(err, "token")))
	}

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return res, nil
	case res.StatusCode == http.StatusNotFound:
		msg := readSnippet(res)
		return nil, provider.Declined(op, symbol, fmt.Errorf("unknown symbol: %s", msg))
	case res.StatusCode == http.StatusUnauthorized, res.StatusCode == http.StatusForbidden:
		res.Body.Close()
		return nil, provider.Networking(op, symbol, fmt.Errorf("unauthorized"))
	case res.StatusCode == http.StatusTooManyRequests:
		res.Body.Close()
		return nil, provider.Networking(op, symbol, fmt.Errorf("rate limited"))
	default:
		res.Body.Close()
		return nil, provider.Networking(op, symbol, fmt.Errorf("unexpected status code: %d", res.StatusCode))
	}
}

func (c *Client) getJSON(ctx context.Context, op string, symbol provider.Symbol, rawURL string, out any) error {
	res, err := c.get(ctx, op, symbol, rawURL)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return provider.Parsing(op, symbol, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

func readSnippet(res *http.Response) string {
	defer res.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
	return string(b)
}
