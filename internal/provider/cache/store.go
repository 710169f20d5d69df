package cache

import (
	"time"

	"quickstocks/internal/provider"
)

const (
	DefaultQuoteTTL = 60 * time.Second
	DefaultLogoTTL  = time.Hour
	DefaultMaxItems = 10 * 1024
)

// Config sizes the two namespaces of a Store.
type Config struct {
	QuoteTTL time.Duration
	LogoTTL  time.Duration
	MaxItems int
}

// Store holds quotes and logos in independently locked namespaces.
// Quotes are volatile and short-lived; logos are static and long-lived.
type Store struct {
	Quotes *Namespace[provider.Quote]
	Logos  *Namespace[provider.Logo]
}

// New builds a Store, filling zero config fields with the defaults.
func New(cfg Config, opts ...Option) *Store {
	if cfg.QuoteTTL <= 0 {
		cfg.QuoteTTL = DefaultQuoteTTL
	}
	if cfg.LogoTTL <= 0 {
		cfg.LogoTTL = DefaultLogoTTL
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}
	return &Store{
		Quotes: NewNamespace[provider.Quote]("quotes", cfg.QuoteTTL, cfg.MaxItems, opts...),
		Logos:  NewNamespace[provider.Logo]("logos", cfg.LogoTTL, cfg.MaxItems, opts...),
	}
}

// Purge empties both namespaces.
func (s *Store) Purge() {
	s.Quotes.Purge()
	s.Logos.Purge()
}
