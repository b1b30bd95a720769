package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// SnapshotBuilds 按结果统计的构建次数：success | stale | no_data | error
	SnapshotBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insights_snapshot_builds_total",
			Help: "Total number of insights snapshot builds",
		},
		[]string{"result"},
	)

	SnapshotBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insights_snapshot_build_duration_seconds",
			Help:    "Duration of fetching records and building the course hierarchy",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	SnapshotRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "insights_snapshot_records",
			Help: "Number of flat records in the current snapshot",
		},
	)

	SnapshotLearners = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "insights_snapshot_learners",
			Help: "Number of distinct learners in the current snapshot",
		},
	)

	RecordCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insights_record_cache_lookups_total",
			Help: "Record cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	RateLimitRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SnapshotBuilds)
	prometheus.MustRegister(SnapshotBuildDuration)
	prometheus.MustRegister(SnapshotRecords)
	prometheus.MustRegister(SnapshotLearners)
	prometheus.MustRegister(RecordCacheLookups)
	prometheus.MustRegister(RateLimitRejections)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
