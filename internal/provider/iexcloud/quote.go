package iexcloud

import (
	"context"
	"net/url"

	"quickstocks/internal/provider"
)

// quoteResponse is the subset of /stock/{symbol}/quote we use.
// Every field may be null.
type quoteResponse struct {
	Symbol        string   `json:"symbol"`
	LatestPrice   *float64 `json:"latestPrice"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	Open          *float64 `json:"open"`
	Close         *float64 `json:"close"`
	PreviousClose *float64 `json:"previousClose"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"changePercent"`
	Week52High    *float64 `json:"week52High"`
	Week52Low     *float64 `json:"week52Low"`
	PERatio       *float64 `json:"peRatio"`
	YTDChange     *float64 `json:"ytdChange"`
	MarketCap     *float64 `json:"marketCap"`
}

// FetchQuote retrieves the latest quote for symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol provider.Symbol) (provider.Quote, error) {
	const op = "iexcloud quote"
	var body quoteResponse
	if err := c.getJSON(ctx, op, symbol, c.endpoint("/stock/"+url.PathEscape(string(symbol))+"/quote"), &body); err != nil {
		return provider.Quote{}, err
	}
	return provider.Quote{
		Symbol:        symbol,
		Current:       body.LatestPrice,
		High:          body.High,
		Low:           body.Low,
		Open:          body.Open,
		Close:         body.Close,
		PreviousClose: body.PreviousClose,
		Change:        body.Change,
		ChangePercent: body.ChangePercent,
		Week52High:    body.Week52High,
		Week52Low:     body.Week52Low,
		PERatio:       body.PERatio,
		YTDChange:     body.YTDChange,
		MarketCap:     body.MarketCap,
	}, nil
}
