package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors register on the default registry, which /metrics serves.
var (
	httpReqs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	httpLat = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	httpInflight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_inflight",
		Help: "Requests currently being served.",
	})

	// Pages are small: redirects are empty, the full list a few tens of KiB.
	httpRespSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "Response body size by method and route.",
		Buckets: prometheus.ExponentialBuckets(256, 4, 7), // 256B..1MiB
	}, []string{"method", "path"})

	authFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cafe_auth_failures_total",
		Help: "Mutations rejected for a wrong API key, by route.",
	}, []string{"route"})
)

// RecordAuthFailure counts a rejected API key on route (c.FullPath()).
func RecordAuthFailure(route string) {
	authFailures.WithLabelValues(route).Inc()
}

// Metrics instruments every request. The path label is the route template
// (/update-price/:id), or the raw path when nothing matched. Empty bodies
// (redirects, 204) are not observed in the size histogram.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInflight.Inc()
		start := time.Now()
		c.Next()
		httpInflight.Dec()

		method, path := c.Request.Method, routeLabel(c)
		httpReqs.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if n := c.Writer.Size(); n > 0 {
			httpRespSize.WithLabelValues(method, path).Observe(float64(n))
		}
	}
}

func routeLabel(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
