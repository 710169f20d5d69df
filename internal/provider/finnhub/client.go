package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"time"

	"quickstocks/internal/provider"
)

const baseURL = "https://finnhub.io/api/v1"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=finnhub_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Finnhub API. It serves index constituents,
// symbol search, daily candles and a basic quote.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	header     http.Header
	query      url.Values
	now        func() time.Time
}

// Option is a configuration option for the Finnhub client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) { c.httpClient = httpClient }
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

// WithClock overrides the time source used for candle ranges.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a new Finnhub client. The token is sent as a query parameter.
func New(token string, options ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
		now:        time.Now,
	}
	if token != "" {
		// https://finnhub.io/docs/api/authentication
		c.query.Add("token", token)
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// getJSON performs a GET of path with params and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, op string, symbol provider.Symbol, path string, params url.Values, out any) error {
	query := maps.Clone(c.query)
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	rawURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return provider.Networking(op, symbol, fmt.Errorf("creating request: %w", provider.StripQuery(err, "token")))
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return provider.Networking(op, symbol, fmt.Errorf("performing request: %w", provider.StripQuery(err, "token")))
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return provider.Declined(op, symbol, fmt.Errorf("status %d", res.StatusCode))

	case http.StatusUnauthorized, http.StatusForbidden:
		return provider.Networking(op, symbol, fmt.Errorf("unauthorized"))

	case http.StatusTooManyRequests:
		return provider.Networking(op, symbol, fmt.Errorf("rate limited"))

	default:
		return provider.Networking(op, symbol, fmt.Errorf("unexpected status code: %d", res.StatusCode))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return provider.Parsing(op, symbol, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
