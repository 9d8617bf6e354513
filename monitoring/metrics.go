package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	RateLimitHits *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Business metrics
	ReviewsCreated   prometheus.Counter
	ProfilesSaved    prometheus.Counter
	ContactSubmitted *prometheus.CounterVec
	WebSocketClients prometheus.Gauge
}

var (
	metrics  *Metrics
	initOnce sync.Once
)

// Init initializes all Prometheus metrics once per process
func Init() *Metrics {
	initOnce.Do(func() {
		metrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "HTTP request duration in seconds",
					Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
				},
				[]string{"method", "path"},
			),
			HTTPRequestsInFlight: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "http_requests_in_flight",
					Help: "Number of HTTP requests currently being processed",
				},
			),
			RateLimitHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "rate_limit_hits_total",
					Help: "Total number of requests rejected by the rate limiter",
				},
				[]string{"path"},
			),
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_hits_total",
					Help: "Total number of cache hits",
				},
				[]string{"cache_type"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_misses_total",
					Help: "Total number of cache misses",
				},
				[]string{"cache_type"},
			),
			ReviewsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "reviews_created_total",
					Help: "Total number of reviews submitted",
				},
			),
			ProfilesSaved: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "profiles_saved_total",
					Help: "Total number of worker profile creates and updates",
				},
			),
			ContactSubmitted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "contact_submissions_total",
					Help: "Total number of contact queries and feedback entries",
				},
				[]string{"kind"},
			),
			WebSocketClients: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "websocket_clients",
					Help: "Number of connected review feed clients",
				},
			),
		}
	})
	return metrics
}

// Get returns the global metrics instance
func Get() *Metrics {
	return Init()
}

// GinHandler returns a Gin-compatible handler for Prometheus metrics
func GinHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// MetricsMiddleware is a Gin middleware for collecting HTTP metrics
func MetricsMiddleware() gin.HandlerFunc {
	m := Get()
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordRateLimitHit(path string) {
	Get().RateLimitHits.WithLabelValues(path).Inc()
}

func RecordCacheHit(cacheType string) {
	Get().CacheHits.WithLabelValues(cacheType).Inc()
}

func RecordCacheMiss(cacheType string) {
	Get().CacheMisses.WithLabelValues(cacheType).Inc()
}

func RecordReviewCreated() {
	Get().ReviewsCreated.Inc()
}

func RecordProfileSaved() {
	Get().ProfilesSaved.Inc()
}

// RecordContactSubmission counts a contact form write; kind is "query" or "feedback"
func RecordContactSubmission(kind string) {
	Get().ContactSubmitted.WithLabelValues(kind).Inc()
}

func SetWebSocketClients(n int) {
	Get().WebSocketClients.Set(float64(n))
}
