package aggregate

import (
	"context"
	"errors"
	"testing"

	"quickstocks/internal/provider"
)

type fetcherFunc func(ctx context.Context, symbol provider.Symbol) (provider.Quote, error)

func (f fetcherFunc) FetchQuote(ctx context.Context, symbol provider.Symbol) (provider.Quote, error) {
	return f(ctx, symbol)
}

func counting(calls *int, q provider.Quote, err error) fetcherFunc {
	return func(context.Context, provider.Symbol) (provider.Quote, error) {
		*calls++
		return q, err
	}
}

func TestMerge_PrimaryWinsAndGapsAreFilled(t *testing.T) {
	primary := provider.Quote{Symbol: "AAPL", Current: provider.Float(100), High: provider.Float(101)}
	secondary := provider.Quote{Symbol: "aapl", Current: provider.Float(99), Low: provider.Float(98), MarketCap: provider.Float(1e12)}

	got := Merge(primary, secondary)

	if got.Symbol != "AAPL" {
		t.Fatalf("symbol: want AAPL, got %q", got.Symbol)
	}
	if *got.Current != 100 || *got.High != 101 {
		t.Fatalf("primary fields overwritten: %+v", got)
	}
	if got.Low == nil || *got.Low != 98 || got.MarketCap == nil || *got.MarketCap != 1e12 {
		t.Fatalf("gaps not filled: %+v", got)
	}
	if got.Open != nil {
		t.Fatalf("field absent from both sources should stay nil: %+v", got)
	}

	// the merged quote does not alias the secondary
	*secondary.Low = 1
	if *got.Low != 98 {
		t.Fatalf("merged quote aliases secondary")
	}
}

func TestComplete(t *testing.T) {
	q := provider.Quote{Symbol: "X"}
	if Complete(q) {
		t.Fatalf("empty quote reported complete")
	}
	for _, f := range fields(&q) {
		*f = provider.Float(1)
	}
	if !Complete(q) {
		t.Fatalf("full quote reported incomplete")
	}
}

func TestFetchQuote_CompletePrimarySkipsSecondary(t *testing.T) {
	full := provider.Quote{Symbol: "AAPL"}
	for _, f := range fields(&full) {
		*f = provider.Float(2)
	}
	var pCalls, sCalls int
	f := &QuoteFetcher{
		Primary:   counting(&pCalls, full, nil),
		Secondary: counting(&sCalls, provider.Quote{}, nil),
	}

	got, err := f.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pCalls != 1 || sCalls != 0 {
		t.Fatalf("calls: primary=%d secondary=%d", pCalls, sCalls)
	}
	if !Complete(got) {
		t.Fatalf("lost fields: %+v", got)
	}
}

func TestFetchQuote_MergesWhenPrimaryHasGaps(t *testing.T) {
	var pCalls, sCalls int
	f := &QuoteFetcher{
		Primary:   counting(&pCalls, provider.Quote{Symbol: "AAPL", Current: provider.Float(100)}, nil),
		Secondary: counting(&sCalls, provider.Quote{Symbol: "AAPL", Open: provider.Float(97)}, nil),
	}

	got, err := f.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sCalls != 1 || got.Open == nil || *got.Open != 97 || *got.Current != 100 {
		t.Fatalf("unexpected merge: %+v (secondary calls %d)", got, sCalls)
	}
}

func TestFetchQuote_SecondaryFailureKeepsPrimary(t *testing.T) {
	var pCalls, sCalls int
	f := &QuoteFetcher{
		Primary:   counting(&pCalls, provider.Quote{Symbol: "AAPL", Current: provider.Float(100)}, nil),
		Secondary: counting(&sCalls, provider.Quote{}, provider.Networking("finnhub quote", "AAPL", errors.New("boom"))),
	}

	got, err := f.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got.Current != 100 {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestFetchQuote_DeclinedPrimaryIsFinal(t *testing.T) {
	var pCalls, sCalls int
	declined := provider.Declined("iexcloud quote", "NOPE", errors.New("unknown symbol"))
	f := &QuoteFetcher{
		Primary:   counting(&pCalls, provider.Quote{}, declined),
		Secondary: counting(&sCalls, provider.Quote{Symbol: "NOPE", Current: provider.Float(1)}, nil),
	}

	_, err := f.FetchQuote(context.Background(), "NOPE")
	if !errors.Is(err, declined) {
		t.Fatalf("want declined error, got %v", err)
	}
	if sCalls != 0 {
		t.Fatalf("secondary consulted after decline")
	}
}

func TestFetchQuote_PrimaryFailureFallsBack(t *testing.T) {
	var pCalls, sCalls int
	primaryErr := provider.Networking("iexcloud quote", "AAPL", errors.New("503"))
	f := &QuoteFetcher{
		Primary:   counting(&pCalls, provider.Quote{}, primaryErr),
		Secondary: counting(&sCalls, provider.Quote{Symbol: "AAPL", Current: provider.Float(99)}, nil),
	}

	got, err := f.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got.Current != 99 {
		t.Fatalf("unexpected quote: %+v", got)
	}

	// both failing reports the primary's error
	f.Secondary = counting(&sCalls, provider.Quote{}, errors.New("also down"))
	_, err = f.FetchQuote(context.Background(), "AAPL")
	if !errors.Is(err, primaryErr) {
		t.Fatalf("want primary error, got %v", err)
	}
}

func TestFetchQuote_NoSecondary(t *testing.T) {
	var pCalls int
	primaryErr := provider.Parsing("iexcloud quote", "AAPL", errors.New("bad json"))
	f := &QuoteFetcher{Primary: counting(&pCalls, provider.Quote{}, primaryErr)}

	_, err := f.FetchQuote(context.Background(), "AAPL")
	if provider.KindOf(err) != provider.KindParsing {
		t.Fatalf("want parsing, got %v", err)
	}
}
