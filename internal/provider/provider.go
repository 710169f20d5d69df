package provider

import (
	"context"
	"time"
)

// Symbol is a case-sensitive ticker or index identifier.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Quote is the normalized shape returned by all quote providers.
// Every numeric field is optional; nil means the source did not provide it.
type Quote struct {
	Symbol        Symbol   `json:"symbol"`
	Current       *float64 `json:"current,omitempty"`
	High          *float64 `json:"high,omitempty"`
	Low           *float64 `json:"low,omitempty"`
	Open          *float64 `json:"open,omitempty"`
	Close         *float64 `json:"close,omitempty"`
	PreviousClose *float64 `json:"previous_close,omitempty"`
	Change        *float64 `json:"change,omitempty"`
	ChangePercent *float64 `json:"change_percent,omitempty"`
	Week52High    *float64 `json:"week52_high,omitempty"`
	Week52Low     *float64 `json:"week52_low,omitempty"`
	PERatio       *float64 `json:"pe_ratio,omitempty"`
	YTDChange     *float64 `json:"ytd_change,omitempty"`
	MarketCap     *float64 `json:"market_cap,omitempty"`
}

// Logo is a decoded company logo.
type Logo struct {
	Symbol      Symbol `json:"symbol"`
	Data        []byte `json:"-"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Index is a market index and its ordered member symbols.
type Index struct {
	Symbol       Symbol   `json:"symbol"`
	Name         string   `json:"name"`
	Constituents []Symbol `json:"constituents"`
}

// History holds daily closing prices, oldest first.
type History struct {
	Symbol     Symbol      `json:"symbol"`
	Closes     []float64   `json:"closes"`
	Timestamps []time.Time `json:"timestamps"`
}

// QuoteFetcher retrieves a current quote for a symbol.
//
//go:generate mockgen -package=dataservice_test -destination=../dataservice/mock_provider_test.go -source=provider.go
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, symbol Symbol) (Quote, error)
}

// LogoFetcher retrieves a logo image for a symbol.
type LogoFetcher interface {
	FetchLogo(ctx context.Context, symbol Symbol) (Logo, error)
}

// IndexFetcher retrieves the constituents of an index.
type IndexFetcher interface {
	FetchIndex(ctx context.Context, symbol Symbol) (Index, error)
}

// SearchFetcher looks up symbols matching a free-text query.
type SearchFetcher interface {
	Search(ctx context.Context, query string) ([]Symbol, error)
}

// HistoryFetcher retrieves daily price history for a symbol.
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, symbol Symbol) (History, error)
}

// LogoSource is a local, always-available logo lookup.
type LogoSource interface {
	Lookup(symbol Symbol) (Logo, bool)
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
