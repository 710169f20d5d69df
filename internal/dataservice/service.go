// Package dataservice is the single entry point for quotes, logos, indices
// and symbol search. It answers from the cache when it can and otherwise
// fetches through the retry policy, writing successful results back.
package dataservice

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"quickstocks/internal/logger"
	"quickstocks/internal/metrics"
	"quickstocks/internal/provider"
	"quickstocks/internal/provider/cache"
	"quickstocks/internal/provider/retry"
)

var (
	errEmptySymbol   = errors.New("empty symbol")
	errNoHistory     = errors.New("no history source configured")
	errMissingSource = errors.New("dataservice: quote, logo, index and search fetchers are required")
)

// Deps are the collaborators of a Service. History, Assets, Cache and Logger
// are optional.
type Deps struct {
	Quotes  provider.QuoteFetcher
	Logos   provider.LogoFetcher
	Indices provider.IndexFetcher
	Search  provider.SearchFetcher
	History provider.HistoryFetcher
	Assets  provider.LogoSource
	Cache   *cache.Store
	Logger  *zap.Logger
}

// Service coordinates cache and fetchers. It is safe for concurrent use.
type Service struct {
	quotes  provider.QuoteFetcher
	logos   provider.LogoFetcher
	indices provider.IndexFetcher
	search  provider.SearchFetcher
	history provider.HistoryFetcher
	assets  provider.LogoSource
	cache   *cache.Store
	logger  *zap.Logger

	retry            retry.Policy
	singleFlight     bool
	batchConcurrency int
	group            singleflight.Group
}

func New(deps Deps, opts ...Option) (*Service, error) {
	if deps.Quotes == nil || deps.Logos == nil || deps.Indices == nil || deps.Search == nil {
		return nil, errMissingSource
	}
	s := &Service{
		quotes:           deps.Quotes,
		logos:            deps.Logos,
		indices:          deps.Indices,
		search:           deps.Search,
		history:          deps.History,
		assets:           deps.Assets,
		cache:            deps.Cache,
		logger:           logger.OrNop(deps.Logger),
		retry:            retry.Default(),
		batchConcurrency: DefaultBatchConcurrency,
	}
	if s.cache == nil {
		s.cache = cache.New(cache.Config{})
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.retry.Logger == nil {
		s.retry.Logger = s.logger
	}
	return s, nil
}

// ProvideQuote returns the quote for symbol, from cache when fresh.
func (s *Service) ProvideQuote(ctx context.Context, symbol provider.Symbol) (provider.Quote, error) {
	return provide(ctx, s, "quote", s.cache.Quotes, symbol, s.quotes.FetchQuote)
}

// ProvideLogo returns the logo for symbol. A bundled logo wins over both
// cache and network.
func (s *Service) ProvideLogo(ctx context.Context, symbol provider.Symbol) (provider.Logo, error) {
	if symbol != "" && s.assets != nil {
		if logo, ok := s.assets.Lookup(symbol); ok {
			s.logger.Debug("bundled logo", zap.String("symbol", symbol.String()))
			return logo, nil
		}
	}
	logo, err := provide(ctx, s, "logo", s.cache.Logos, symbol, s.logos.FetchLogo)
	if err != nil {
		return provider.Logo{}, err
	}
	// The cached entry keeps its own bytes.
	logo.Data = bytes.Clone(logo.Data)
	return logo, nil
}

// ProvideIndex returns the constituents of an index. Results are not cached.
func (s *Service) ProvideIndex(ctx context.Context, symbol provider.Symbol) (provider.Index, error) {
	const op = "index"
	if symbol == "" {
		return provider.Index{}, provider.Internal(op, symbol, errEmptySymbol)
	}
	idx, err := fetch(ctx, s, op, symbol, s.indices.FetchIndex)
	if err != nil {
		return provider.Index{}, err
	}
	if idx.Symbol == "" {
		idx.Symbol = symbol
	}
	if idx.Name == "" {
		idx.Name = indexName(symbol)
	}
	return idx, nil
}

// SearchSymbols returns symbols matching query. A blank query matches
// nothing and is answered without a fetch.
func (s *Service) SearchSymbols(ctx context.Context, query string) ([]provider.Symbol, error) {
	const op = "search"
	query = strings.TrimSpace(query)
	if query == "" {
		return []provider.Symbol{}, nil
	}
	out, err := fetch(ctx, s, op, "", func(ctx context.Context, _ provider.Symbol) ([]provider.Symbol, error) {
		return s.search.Search(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []provider.Symbol{}
	}
	return out, nil
}

// ProvideHistory returns daily closes for symbol. Results are not cached.
func (s *Service) ProvideHistory(ctx context.Context, symbol provider.Symbol) (provider.History, error) {
	const op = "history"
	if symbol == "" {
		return provider.History{}, provider.Internal(op, symbol, errEmptySymbol)
	}
	if s.history == nil {
		return provider.History{}, provider.Internal(op, symbol, errNoHistory)
	}
	return fetch(ctx, s, op, symbol, s.history.FetchHistory)
}

// ProvideQuotes resolves several quotes concurrently. Duplicate symbols are
// fetched once. The first failure cancels the rest and is returned.
func (s *Service) ProvideQuotes(ctx context.Context, symbols []provider.Symbol) (map[provider.Symbol]provider.Quote, error) {
	var (
		mu  sync.Mutex
		out = make(map[provider.Symbol]provider.Quote, len(symbols))
	)
	seen := make(map[provider.Symbol]struct{}, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for _, sym := range symbols {
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		g.Go(func() error {
			q, err := s.ProvideQuote(ctx, sym)
			if err != nil {
				return err
			}
			mu.Lock()
			out[sym] = q
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// provide implements the cache-then-fetch pattern shared by quotes and logos.
// Only successful fetches are written back.
func provide[V any](
	ctx context.Context,
	s *Service,
	op string,
	ns *cache.Namespace[V],
	symbol provider.Symbol,
	fetchFn func(context.Context, provider.Symbol) (V, error),
) (V, error) {
	var zero V
	if symbol == "" {
		return zero, provider.Internal(op, symbol, errEmptySymbol)
	}

	v, err := ns.Get(symbol)
	if err == nil {
		s.logger.Debug("cache hit", zap.String("op", op), zap.String("symbol", symbol.String()))
		return v, nil
	}
	s.logger.Debug("cache miss", zap.String("op", op), zap.String("symbol", symbol.String()), zap.Error(err))

	load := func(ctx context.Context) (V, error) {
		v, err := fetch(ctx, s, op, symbol, fetchFn)
		if err != nil {
			return zero, err
		}
		ns.Put(symbol, v)
		return v, nil
	}
	if !s.singleFlight {
		return load(ctx)
	}

	// The shared fetch outlives any single caller so one abandoned request
	// cannot fail the others waiting on it.
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(op+":"+string(symbol), func() (any, error) {
		return load(shared)
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// fetch runs one logical fetch under the retry policy and records it.
func fetch[V any](
	ctx context.Context,
	s *Service,
	op string,
	symbol provider.Symbol,
	fetchFn func(context.Context, provider.Symbol) (V, error),
) (V, error) {
	start := time.Now()
	v, err := retry.Do(ctx, s.retry, op, func(ctx context.Context) (V, error) {
		return fetchFn(ctx, symbol)
	})
	metrics.FetchDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.FetchTotal.WithLabelValues(op, result(err)).Inc()
	if err != nil {
		s.logger.Warn("fetch failed",
			zap.String("op", op),
			zap.String("symbol", symbol.String()),
			zap.Stringer("kind", provider.KindOf(err)),
			zap.Error(err))
	}
	return v, err
}

func result(err error) string {
	if err == nil {
		return metrics.Status(nil)
	}
	return provider.KindOf(err).String()
}
