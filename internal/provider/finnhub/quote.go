package finnhub

import (
	"context"
	"fmt"
	"net/url"

	"quickstocks/internal/provider"
)

// https://finnhub.io/docs/api/quote
type quoteResponse struct {
	C  *float64 `json:"c"`
	D  *float64 `json:"d"`
	DP *float64 `json:"dp"`
	H  *float64 `json:"h"`
	L  *float64 `json:"l"`
	O  *float64 `json:"o"`
	PC *float64 `json:"pc"`
	T  int64    `json:"t"`
}

// FetchQuote retrieves the basic intraday quote. Finnhub answers unknown
// symbols with an all-zero quote, which is reported as declined.
func (c *Client) FetchQuote(ctx context.Context, symbol provider.Symbol) (provider.Quote, error) {
	const op = "finnhub quote"
	var body quoteResponse
	if err := c.getJSON(ctx, op, symbol, "/quote", url.Values{"symbol": []string{string(symbol)}}, &body); err != nil {
		return provider.Quote{}, err
	}
	if body.T == 0 && isZero(body.C) && isZero(body.PC) {
		return provider.Quote{}, provider.Declined(op, symbol, fmt.Errorf("empty quote"))
	}
	return provider.Quote{
		Symbol:        symbol,
		Current:       body.C,
		High:          body.H,
		Low:           body.L,
		Open:          body.O,
		PreviousClose: body.PC,
		Change:        body.D,
		ChangePercent: body.DP,
	}, nil
}

func isZero(v *float64) bool { return v == nil || *v == 0 }
