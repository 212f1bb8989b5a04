// Package metrics provides Prometheus metrics for the content API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quill"

// Status label values for store queries.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// StoreQueriesTotal counts store operations by outcome.
	StoreQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_queries_total",
			Help:      "Total number of store operations",
		},
		[]string{"operation", "status"},
	)

	// StoreQueryDuration measures store operation duration.
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_query_duration_seconds",
			Help:      "Duration of store operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// PageSize observes how many items each listing returned.
	PageSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "page_size",
			Help:      "Distribution of returned page sizes",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		},
		[]string{"operation"},
	)

	// HTTPRequestsTotal counts HTTP requests by route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "code"},
	)

	// HTTPRequestDuration measures HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordQuery records one store operation that started at start.
func RecordQuery(operation string, start time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	StoreQueriesTotal.WithLabelValues(operation, status).Inc()
	StoreQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordPage records the number of items a listing produced.
func RecordPage(operation string, size int) {
	PageSize.WithLabelValues(operation).Observe(float64(size))
}

// RecordRequest records one served HTTP request.
func RecordRequest(method, route string, code int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
