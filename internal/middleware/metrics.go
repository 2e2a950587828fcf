package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/pkg/metrics"
)

// Metrics records request counts and latency per route template.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start).Seconds())
	}
}
