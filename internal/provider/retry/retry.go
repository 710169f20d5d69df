package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"quickstocks/internal/metrics"
	"quickstocks/internal/provider"
)

// DefaultMaxRetries is the number of extra attempts after the first failure.
const DefaultMaxRetries = 3

// Policy retries failed fetches immediately, up to MaxRetries extra attempts.
// Declined errors are terminal and surface after the first attempt.
type Policy struct {
	MaxRetries uint64
	Logger     *zap.Logger
}

func Default() Policy { return Policy{MaxRetries: DefaultMaxRetries} }

// Do runs fn under p. After MaxRetries+1 failures the last error is returned
// unchanged. Cancellation of ctx stops further attempts.
func Do[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	b := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, p.MaxRetries), ctx)
	attempt := 0
	operation := func() (T, error) {
		attempt++
		v, err := fn(ctx)
		if err != nil && provider.IsDeclined(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}
	notify := func(err error, _ time.Duration) {
		metrics.Retries.WithLabelValues(op).Inc()
		if p.Logger != nil {
			p.Logger.Debug("retrying fetch",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Stringer("kind", provider.KindOf(err)),
				zap.Error(err))
		}
	}
	return backoff.RetryNotifyWithData(operation, b, notify)
}
