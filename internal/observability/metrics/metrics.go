package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomie_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roomie_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	dashboardBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomie_dashboard_builds_total",
		Help: "Count of dashboard aggregation builds by result",
	}, []string{"result"})

	dashboardBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roomie_dashboard_build_duration_seconds",
		Help:    "Duration of dashboard aggregation builds",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	swallowedReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomie_swallowed_reads_total",
		Help: "Count of list reads that failed and were served as empty",
	}, []string{"entity"})

	nudgeEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomie_nudge_events_published_total",
		Help: "Count of nudge events handed to the event publisher by result",
	}, []string{"result"})
)

// Result label values for dashboard builds.
const (
	ResultOK       = "ok"
	ResultFallback = "fallback"
	ResultError    = "error"
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveDashboardBuild records one dashboard aggregation with a result label.
func ObserveDashboardBuild(result string, duration time.Duration) {
	dashboardBuilds.WithLabelValues(result).Inc()
	dashboardBuildDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// ObserveSwallowedRead increments the swallowed-read counter for one entity kind.
func ObserveSwallowedRead(entity string) {
	swallowedReads.WithLabelValues(entity).Inc()
}

// ObserveNudgePublish records a nudge event publish attempt.
func ObserveNudgePublish(result string) {
	nudgeEventsPublished.WithLabelValues(result).Inc()
}
