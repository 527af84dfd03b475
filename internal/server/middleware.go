package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/logging"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/metrics"
)

// RequestLoggingMiddleware tags each request with an ID and logs method,
// path, duration, and status, mirroring the deploy log format.
func RequestLoggingMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		logger.Info("→ %s %s from %s [%s]", c.Request.Method, c.Request.URL.Path, c.ClientIP(), requestID)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		logger.Info("← %s %s completed in %dms [%d]",
			c.Request.Method, c.Request.URL.Path, elapsed.Milliseconds(), status)

		route := c.FullPath()
		if route == "" {
			route = "fallback"
		}
		metrics.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
	}
}
