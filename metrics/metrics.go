// Package metrics exposes prometheus counters for statement caching and
// transaction outcomes. Serving them is left to the host process.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hdbpp_query_cache_hits_total",
			Help: "Statement lookups served from the query builder caches",
		},
		[]string{"family"},
	)
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hdbpp_query_cache_misses_total",
			Help: "Statement lookups that had to build the statement text",
		},
		[]string{"family"},
	)
	Transactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hdbpp_transactions_total",
			Help: "Archive transactions by statement and outcome",
		},
		[]string{"statement", "result"},
	)
)

func ObserveLookup(family string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(family).Inc()
		return
	}
	CacheMisses.WithLabelValues(family).Inc()
}

func ObserveTransaction(statement string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	Transactions.WithLabelValues(statement, result).Inc()
}
