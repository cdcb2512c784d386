package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nickgalis/restful-task-manager/internal/logger"
)

// RequestLogger logs one line per request with status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
