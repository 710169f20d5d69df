package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Cache metrics
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickstocks_cache_lookups_total",
			Help: "Cache lookups by namespace and result (hit, miss, expired)",
		},
		[]string{"namespace", "result"},
	)
	CacheEvictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickstocks_cache_evictions_total",
			Help: "Cache evictions by namespace and reason (expired, capacity)",
		},
		[]string{"namespace", "reason"},
	)
	CacheEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quickstocks_cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"namespace"},
	)

	// Throttle metrics
	ThrottleWait = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quickstocks_throttle_wait_seconds",
			Help:    "Delay imposed on outbound requests by the throttle",
			Buckets: []float64{0, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		})

	// Fetch metrics
	FetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickstocks_fetch_total",
			Help: "Upstream fetches by operation and result kind",
		},
		[]string{"op", "result"},
	)
	FetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quickstocks_fetch_duration_seconds",
			Help:    "Upstream fetch duration including retries and throttling",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	Retries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickstocks_retries_total",
			Help: "Retried fetch attempts by operation",
		},
		[]string{"op"},
	)

	// API metrics
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quickstocks_api_request_duration_seconds",
			Help:    "API request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	// MustRegister panics if registration fails (e.g. duplicate)
	prometheus.MustRegister(
		CacheLookups, CacheEvictions, CacheEntries,
		ThrottleWait,
		FetchTotal, FetchDuration, Retries,
		APIRequestDuration,
	)
}

// Status maps an error to a metric label.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
