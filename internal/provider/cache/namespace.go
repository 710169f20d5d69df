package cache

import (
	"container/list"
	"errors"
	"sync"
	"time"

	"quickstocks/internal/metrics"
	"quickstocks/internal/provider"
)

var (
	// ErrNotFound is returned when no entry exists for a symbol.
	ErrNotFound = errors.New("cache: not found")
	// ErrExpired is returned when an entry existed but its TTL elapsed.
	// The entry is evicted by the lookup that observes it.
	ErrExpired = errors.New("cache: expired")
)

// IsMiss reports whether err is ErrNotFound or ErrExpired.
func IsMiss(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrExpired)
}

// Entry wraps a cached value with its absolute expiry.
type Entry[V any] struct {
	Symbol    provider.Symbol
	Value     V
	ExpiresAt time.Time
}

// Usable reports whether the entry may be served at now.
func (e Entry[V]) Usable(now time.Time) bool { return now.Before(e.ExpiresAt) }

// Namespace is a TTL cache keyed by symbol with an entry-count bound.
// When the bound is exceeded the oldest inserted entries are dropped first.
// All methods are safe for concurrent use.
type Namespace[V any] struct {
	name     string
	ttl      time.Duration
	maxItems int
	now      func() time.Time

	mu    sync.RWMutex
	items map[provider.Symbol]*list.Element // value: *Entry[V]
	order *list.List                        // front = oldest insert
}

// Option configures a Namespace.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewNamespace returns an empty namespace. maxItems <= 0 disables the bound.
func NewNamespace[V any](name string, ttl time.Duration, maxItems int, opts ...Option) *Namespace[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Namespace[V]{
		name:     name,
		ttl:      ttl,
		maxItems: maxItems,
		now:      o.now,
		items:    make(map[provider.Symbol]*list.Element),
		order:    list.New(),
	}
}

func (n *Namespace[V]) Name() string       { return n.name }
func (n *Namespace[V]) TTL() time.Duration { return n.ttl }

// Get returns the value for symbol if present and unexpired.
func (n *Namespace[V]) Get(symbol provider.Symbol) (V, error) {
	var zero V
	now := n.now()

	n.mu.RLock()
	el, ok := n.items[symbol]
	var e Entry[V]
	if ok {
		e = *el.Value.(*Entry[V])
	}
	n.mu.RUnlock()

	if !ok {
		metrics.CacheLookups.WithLabelValues(n.name, "miss").Inc()
		return zero, ErrNotFound
	}
	if !e.Usable(now) {
		n.evictExpired(symbol, now)
		metrics.CacheLookups.WithLabelValues(n.name, "expired").Inc()
		return zero, ErrExpired
	}
	metrics.CacheLookups.WithLabelValues(n.name, "hit").Inc()
	return e.Value, nil
}

// evictExpired removes symbol unless a concurrent Put refreshed it.
func (n *Namespace[V]) evictExpired(symbol provider.Symbol, now time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()
	el, ok := n.items[symbol]
	if !ok || el.Value.(*Entry[V]).Usable(now) {
		return
	}
	n.removeLocked(el)
	metrics.CacheEvictions.WithLabelValues(n.name, "expired").Inc()
	metrics.CacheEntries.WithLabelValues(n.name).Set(float64(len(n.items)))
}

// Put inserts or overwrites the entry for symbol with a fresh expiry.
func (n *Namespace[V]) Put(symbol provider.Symbol, v V) {
	e := &Entry[V]{Symbol: symbol, Value: v, ExpiresAt: n.now().Add(n.ttl)}

	n.mu.Lock()
	defer n.mu.Unlock()
	if el, ok := n.items[symbol]; ok {
		n.removeLocked(el)
	}
	n.items[symbol] = n.order.PushBack(e)
	if n.maxItems > 0 {
		for len(n.items) > n.maxItems {
			n.removeLocked(n.order.Front())
			metrics.CacheEvictions.WithLabelValues(n.name, "capacity").Inc()
		}
	}
	metrics.CacheEntries.WithLabelValues(n.name).Set(float64(len(n.items)))
}

// Delete drops the entry for symbol, if any.
func (n *Namespace[V]) Delete(symbol provider.Symbol) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if el, ok := n.items[symbol]; ok {
		n.removeLocked(el)
		metrics.CacheEntries.WithLabelValues(n.name).Set(float64(len(n.items)))
	}
}

// Purge drops every entry.
func (n *Namespace[V]) Purge() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = make(map[provider.Symbol]*list.Element)
	n.order.Init()
	metrics.CacheEntries.WithLabelValues(n.name).Set(0)
}

// Len counts stored entries, including expired ones not yet evicted.
func (n *Namespace[V]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.items)
}

func (n *Namespace[V]) removeLocked(el *list.Element) {
	e := n.order.Remove(el).(*Entry[V])
	delete(n.items, e.Symbol)
}
