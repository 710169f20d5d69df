package ratelimit

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"quickstocks/internal/metrics"
)

// ErrInvalidRate is returned when a limiter's rate is not positive or its
// spacing does not fit a time.Duration of at least one nanosecond.
var ErrInvalidRate = errors.New("ratelimit: rate out of range")

// interval converts a per-second rate into the spacing between requests.
func interval(perSecond float64) (time.Duration, error) {
	if !(perSecond > 0) {
		return 0, ErrInvalidRate
	}
	d := float64(time.Second) / perSecond
	if d < 1 || d >= math.MaxInt64 {
		return 0, ErrInvalidRate
	}
	return time.Duration(d), nil
}

// Limiter delays a caller until it may issue one request.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Throttle spaces calls at least 1/maxPerSecond apart. It never rejects:
// each caller reserves the next free slot and waits until it arrives.
// The mutex guards slot bookkeeping only, never the wait itself.
type Throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

// ThrottleOption configures a Throttle.
type ThrottleOption func(*Throttle)

// WithClock overrides the time source.
func WithClock(now func() time.Time) ThrottleOption {
	return func(t *Throttle) { t.now = now }
}

func NewThrottle(maxPerSecond float64, opts ...ThrottleOption) (*Throttle, error) {
	d, err := interval(maxPerSecond)
	if err != nil {
		return nil, err
	}
	t := &Throttle{
		interval: d,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Interval is the minimum spacing between two reserved slots.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Reserve claims the next free slot and returns how long the caller must
// wait before using it.
func (t *Throttle) Reserve() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if t.next.Before(now) {
		t.next = now
	}
	delay := t.next.Sub(now)
	t.next = t.next.Add(t.interval)
	return delay
}

// Wait reserves a slot and blocks until it arrives or ctx is done.
// A slot reserved by a canceled caller is not handed back.
func (t *Throttle) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	delay := t.Reserve()
	metrics.ThrottleWait.Observe(delay.Seconds())
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
