package finnhub

import (
	"context"
	"net/url"

	"quickstocks/internal/provider"
)

// https://finnhub.io/docs/api/symbol-search
type searchResponse struct {
	Count  int `json:"count"`
	Result []struct {
		Description   string `json:"description"`
		DisplaySymbol string `json:"displaySymbol"`
		Symbol        string `json:"symbol"`
		Type          string `json:"type"`
	} `json:"result"`
}

// Search looks up symbols matching query, in Finnhub's relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]provider.Symbol, error) {
	const op = "finnhub search"
	var body searchResponse
	if err := c.getJSON(ctx, op, "", "/search", url.Values{"q": []string{query}}, &body); err != nil {
		return nil, err
	}
	out := make([]provider.Symbol, 0, len(body.Result))
	for _, r := range body.Result {
		if r.Symbol == "" {
			continue
		}
		out = append(out, provider.Symbol(r.Symbol))
	}
	return out, nil
}
