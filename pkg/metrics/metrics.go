package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "harutrip", Name: "store_queries_total", Help: "Document store queries by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "harutrip", Name: "cache_hits_total", Help: "Cache hits by subsystem."},
		[]string{"cache"},
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "harutrip", Name: "cache_misses_total", Help: "Cache misses by subsystem."},
		[]string{"cache"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "harutrip", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "harutrip", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(StoreQueries)
	reg.MustRegister(CacheHits)
	reg.MustRegister(CacheMisses)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
