package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"mailcraft.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latencies per route.
// c.FullPath() keeps the label cardinality bounded to registered routes.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
