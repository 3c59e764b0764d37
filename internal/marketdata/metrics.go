package marketdata

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchDurationSeconds tracks CoinGecko request latency.
	FetchDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profitrade_marketdata_fetch_duration_seconds",
		Help:    "Duration of CoinGecko API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	// FetchErrorsTotal tracks failed upstream fetches by reason.
	FetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profitrade_marketdata_fetch_errors_total",
		Help: "Total number of failed CoinGecko fetches",
	}, []string{"kind", "reason"})

	// CacheHitsTotal tracks requests served from a fresh cache entry.
	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profitrade_marketdata_cache_hits_total",
		Help: "Total number of market data requests served from cache",
	}, []string{"kind"})

	// CacheMissesTotal tracks requests that went upstream.
	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profitrade_marketdata_cache_misses_total",
		Help: "Total number of market data requests that missed the cache",
	}, []string{"kind"})
)
