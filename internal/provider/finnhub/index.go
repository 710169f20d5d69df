package finnhub

import (
	"context"
	"fmt"
	"net/url"

	"quickstocks/internal/provider"
)

// https://finnhub.io/docs/api/indices-constituents
type constituentsResponse struct {
	Symbol       string   `json:"symbol"`
	Constituents []string `json:"constituents"`
}

// FetchIndex retrieves the member symbols of an index. An index without
// constituents is unknown to Finnhub.
func (c *Client) FetchIndex(ctx context.Context, symbol provider.Symbol) (provider.Index, error) {
	const op = "finnhub index"
	var body constituentsResponse
	params := url.Values{"symbol": []string{string(symbol)}}
	if err := c.getJSON(ctx, op, symbol, "/index/constituents", params, &body); err != nil {
		return provider.Index{}, err
	}
	if len(body.Constituents) == 0 {
		return provider.Index{}, provider.Declined(op, symbol, fmt.Errorf("no constituents"))
	}
	members := make([]provider.Symbol, 0, len(body.Constituents))
	for _, s := range body.Constituents {
		members = append(members, provider.Symbol(s))
	}
	return provider.Index{Symbol: symbol, Constituents: members}, nil
}
