package advisor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal tracks answered queries by branch.
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profitrade_advisor_queries_total",
		Help: "Total number of queries answered",
	}, []string{"branch"})

	// ResponseDurationSeconds tracks time spent building a reply, market data
	// lookups included.
	ResponseDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profitrade_advisor_response_duration_seconds",
		Help:    "Time to build an advisor reply",
		Buckets: prometheus.DefBuckets,
	}, []string{"branch"})
)
