package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocean_cache_hits_total",
			Help: "Total number of listing cache hits",
		},
		[]string{"kind"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocean_cache_misses_total",
			Help: "Total number of listing cache misses",
		},
		[]string{"kind"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocean_cache_evictions_total",
			Help: "Total number of whole-kind listing evictions",
		},
		[]string{"kind"},
	)

	CacheStalePuts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocean_cache_stale_puts_total",
			Help: "Listings dropped because the kind was evicted while they were read",
		},
		[]string{"kind"},
	)

	// CacheErrors is labelled by operation: "get", "generation", "put", "evict".
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocean_cache_errors_total",
			Help: "Total number of cache backend errors",
		},
		[]string{"operation"},
	)
)
