// Package app assembles the data service from configuration.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"quickstocks/internal/aggregate"
	"quickstocks/internal/assets"
	"quickstocks/internal/config"
	"quickstocks/internal/dataservice"
	"quickstocks/internal/httpx"
	zlog "quickstocks/internal/logger"
	"quickstocks/internal/provider"
	"quickstocks/internal/provider/cache"
	"quickstocks/internal/provider/finnhub"
	"quickstocks/internal/provider/iexcloud"
	"quickstocks/internal/provider/ratelimit"
	"quickstocks/internal/provider/retry"
)

// App owns the service and the cache behind it.
type App struct {
	Service *dataservice.Service
	Cache   *cache.Store
}

// New wires upstream clients, each behind its own limiter, into a Service.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	logger = zlog.OrNop(logger)
	if cfg.IEX.Token == "" {
		logger.Warn("iex.token not set; IEX requests will be rejected")
	}
	if cfg.Finnhub.Token == "" {
		logger.Warn("finnhub.token not set; index, search and history requests will be rejected")
	}

	iexHTTP, err := throttled(cfg.Throttle, cfg.IEX.TimeoutSec)
	if err != nil {
		return nil, fmt.Errorf("iex throttle: %w", err)
	}
	iexOpts := []iexcloud.Option{iexcloud.WithHTTPClient(iexHTTP)}
	if cfg.IEX.BaseURL != "" {
		iexOpts = append(iexOpts, iexcloud.WithBaseURL(cfg.IEX.BaseURL))
	}
	iex := iexcloud.New(cfg.IEX.Token, iexOpts...)

	fhHTTP, err := throttled(cfg.Throttle, cfg.Finnhub.TimeoutSec)
	if err != nil {
		return nil, fmt.Errorf("finnhub throttle: %w", err)
	}
	fhOpts := []finnhub.Option{finnhub.WithHTTPClient(fhHTTP)}
	if cfg.Finnhub.BaseURL != "" {
		fhOpts = append(fhOpts, finnhub.WithBaseURL(cfg.Finnhub.BaseURL))
	}
	fh := finnhub.New(cfg.Finnhub.Token, fhOpts...)

	var quotes provider.QuoteFetcher = iex
	if cfg.Finnhub.SecondaryQuotes {
		quotes = &aggregate.QuoteFetcher{Primary: iex, Secondary: fh, Logger: logger}
	}

	bundled, err := assets.Open(cfg.Assets.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	store := cache.New(cache.Config{
		QuoteTTL: cfg.Cache.QuoteTTL(),
		LogoTTL:  cfg.Cache.LogoTTL(),
		MaxItems: cfg.Cache.MaxItems,
	})

	svc, err := dataservice.New(dataservice.Deps{
		Quotes:  quotes,
		Logos:   iex,
		Indices: fh,
		Search:  fh,
		History: fh,
		Assets:  bundled,
		Cache:   store,
		Logger:  logger,
	},
		dataservice.WithRetryPolicy(retry.Policy{MaxRetries: uint64(cfg.Retry.MaxRetries), Logger: logger}),
		dataservice.WithSingleFlight(cfg.Service.SingleFlight),
		dataservice.WithBatchConcurrency(cfg.Service.BatchConcurrency),
	)
	if err != nil {
		return nil, err
	}
	return &App{Service: svc, Cache: store}, nil
}

// throttled returns an HTTP client limited per cfg. A burst above one
// selects the token bucket; otherwise requests are evenly spaced.
func throttled(cfg config.Throttle, timeoutSec int) (*ratelimit.Client, error) {
	limiter, err := NewLimiter(cfg)
	if err != nil {
		return nil, err
	}
	return &ratelimit.Client{
		HTTP:    httpx.New(time.Duration(timeoutSec) * time.Second),
		Limiter: limiter,
	}, nil
}

func NewLimiter(cfg config.Throttle) (ratelimit.Limiter, error) {
	if cfg.Burst > 1 {
		return ratelimit.NewTokenBucket(cfg.MaxPerSecond, cfg.Burst)
	}
	return ratelimit.NewThrottle(cfg.MaxPerSecond)
}
