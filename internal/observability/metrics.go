package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "devconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// GithubRequests counts GitHub gateway requests by upstream status.
	GithubRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_github_requests_total",
		Help: "Total GitHub repository gateway requests by upstream status",
	}, []string{"status"})

	// AccountDeletionSteps counts cascade-deletion step outcomes.
	AccountDeletionSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_account_deletion_steps_total",
		Help: "Cascade account deletion steps by step name and outcome",
	}, []string{"step", "outcome"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
