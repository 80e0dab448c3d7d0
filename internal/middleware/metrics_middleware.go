package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce        sync.Once
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	generationsTotal   *prometheus.CounterVec
	generationFailures prometheus.Counter
)

func initMetrics() {
	metricsOnce.Do(func() {
		requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing_builder",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"})

		requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "landing_builder",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"})

		generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing_builder",
			Subsystem: "agent",
			Name:      "generations_total",
			Help:      "Completed page generations by source",
		}, []string{"source"})

		generationFailures = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "landing_builder",
			Subsystem: "agent",
			Name:      "generation_failures_total",
			Help:      "Generations that produced no document",
		})
	})
}

// MetricsMiddleware records request counts and latency. Paths are recorded by
// route template so session ids do not explode the label set.
func MetricsMiddleware() gin.HandlerFunc {
	initMetrics()

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		requestsTotal.WithLabelValues(method, path, status).Inc()
		requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordGeneration counts one completed generation by its source path.
func RecordGeneration(source string) {
	initMetrics()
	generationsTotal.WithLabelValues(source).Inc()
}

// RecordGenerationFailure counts a generation that failed terminally.
func RecordGenerationFailure() {
	initMetrics()
	generationFailures.Inc()
}
