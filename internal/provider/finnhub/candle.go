package finnhub

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"quickstocks/internal/provider"
)

// historyWindow is how far back FetchHistory reaches.
const historyWindow = 365 * 24 * time.Hour

// https://finnhub.io/docs/api/stock-candles
type candleResponse struct {
	C []float64 `json:"c"`
	H []float64 `json:"h"`
	L []float64 `json:"l"`
	O []float64 `json:"o"`
	S string    `json:"s"`
	T []int64   `json:"t"`
	V []float64 `json:"v"`
}

// FetchHistory retrieves daily closing prices for the last year.
func (c *Client) FetchHistory(ctx context.Context, symbol provider.Symbol) (provider.History, error) {
	const op = "finnhub candles"
	to := c.now().Truncate(time.Second)
	from := to.Add(-historyWindow)
	params := url.Values{
		"symbol":     []string{string(symbol)},
		"resolution": []string{"D"},
		"from":       []string{strconv.FormatInt(from.Unix(), 10)},
		"to":         []string{strconv.FormatInt(to.Unix(), 10)},
	}
	var body candleResponse
	if err := c.getJSON(ctx, op, symbol, "/stock/candle", params, &body); err != nil {
		return provider.History{}, err
	}
	switch body.S {
	case "ok":
	case "no_data":
		return provider.History{}, provider.Declined(op, symbol, fmt.Errorf("no data"))
	default:
		return provider.History{}, provider.Parsing(op, symbol, fmt.Errorf("unexpected status %q", body.S))
	}
	if len(body.C) != len(body.T) {
		return provider.History{}, provider.Parsing(op, symbol, fmt.Errorf("%d closes for %d timestamps", len(body.C), len(body.T)))
	}
	ts := make([]time.Time, len(body.T))
	for i, sec := range body.T {
		ts[i] = time.Unix(sec, 0).UTC()
	}
	return provider.History{Symbol: symbol, Closes: body.C, Timestamps: ts}, nil
}
