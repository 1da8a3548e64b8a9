package middleware

import (
	"time"

	"estate-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency keyed by the route template so that path
// parameters do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
