package config

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const slowRequestThreshold = 200 * time.Millisecond

// PerformanceLogger logs every request with timing and flags slow ones.
func PerformanceLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		logger.Info("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", latency.Milliseconds(),
		)

		if latency > slowRequestThreshold {
			logger.Warn("slow request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"duration_ms", latency.Milliseconds(),
			)
		}
	}
}
