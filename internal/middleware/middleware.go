package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
)

const (
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "requestId"
	// RequestIDHeader is echoed back on every response
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags each request with an id, reusing the caller's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs every request once it completes.
func RequestLogger() gin.HandlerFunc {
	httpLog := logger.Component("http")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := httpLog.Info()
		if status >= 500 {
			event = httpLog.Error()
		} else if status >= 400 {
			event = httpLog.Warn()
		}

		event.
			Str("requestId", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIp", c.ClientIP()).
			Msg("Request handled")
	}
}
