package aggregate

import (
	"context"

	"go.uber.org/zap"

	"quickstocks/internal/logger"
	"quickstocks/internal/provider"
)

// QuoteFetcher combines two quote sources into one.
//
// Primary is authoritative. Its nil fields are filled from Secondary, which
// is only asked when something is missing. A declined primary is final: the
// symbol is unknown and the secondary is not consulted. Any other primary
// failure falls back to the secondary alone.
type QuoteFetcher struct {
	Primary   provider.QuoteFetcher
	Secondary provider.QuoteFetcher
	Logger    *zap.Logger
}

var _ provider.QuoteFetcher = (*QuoteFetcher)(nil)

func (f *QuoteFetcher) FetchQuote(ctx context.Context, symbol provider.Symbol) (provider.Quote, error) {
	log := logger.OrNop(f.Logger)

	primary, err := f.Primary.FetchQuote(ctx, symbol)
	if err != nil {
		if f.Secondary == nil || provider.IsDeclined(err) {
			return provider.Quote{}, err
		}
		log.Warn("primary quote source failed, using secondary", zap.String("symbol", symbol.String()), zap.Error(err))
		secondary, serr := f.Secondary.FetchQuote(ctx, symbol)
		if serr != nil {
			// The primary's error describes the failure best.
			return provider.Quote{}, err
		}
		return secondary, nil
	}

	if f.Secondary == nil || Complete(primary) {
		return primary, nil
	}
	secondary, err := f.Secondary.FetchQuote(ctx, symbol)
	if err != nil {
		log.Debug("secondary quote source failed", zap.String("symbol", symbol.String()), zap.Error(err))
		return primary, nil
	}
	return Merge(primary, secondary), nil
}

// fields lists every optional field of q.
func fields(q *provider.Quote) []**float64 {
	return []**float64{
		&q.Current, &q.High, &q.Low, &q.Open, &q.Close, &q.PreviousClose,
		&q.Change, &q.ChangePercent, &q.Week52High, &q.Week52Low,
		&q.PERatio, &q.YTDChange, &q.MarketCap,
	}
}

// Merge returns primary with every nil field taken from secondary.
// The symbol always comes from primary.
func Merge(primary, secondary provider.Quote) provider.Quote {
	out := primary
	dst, src := fields(&out), fields(&secondary)
	for i := range dst {
		if *dst[i] == nil && *src[i] != nil {
			v := **src[i]
			*dst[i] = &v
		}
	}
	return out
}

// Complete reports whether q has every optional field set.
func Complete(q provider.Quote) bool {
	for _, f := range fields(&q) {
		if *f == nil {
			return false
		}
	}
	return true
}
