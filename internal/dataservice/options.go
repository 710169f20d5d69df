package dataservice

import (
	"quickstocks/internal/provider/retry"
)

// DefaultBatchConcurrency bounds ProvideQuotes fan-out.
const DefaultBatchConcurrency = 4

type Option func(*Service)

// WithRetryPolicy replaces the default retry policy.
func WithRetryPolicy(p retry.Policy) Option {
	return func(s *Service) { s.retry = p }
}

// WithSingleFlight collapses concurrent cache misses for the same symbol
// into one upstream fetch.
func WithSingleFlight(enabled bool) Option {
	return func(s *Service) { s.singleFlight = enabled }
}

// WithBatchConcurrency sets how many quotes ProvideQuotes fetches at once.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}
