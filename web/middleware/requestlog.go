package middleware

import (
	"time"

	"movielist/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLog tags every request with an id and logs method, path, status and
// duration once the handler chain finishes. An inbound X-Request-Id is kept
// so upstream proxies can correlate.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)

		start := time.Now()
		c.Next()

		logger.Debugf("%s %s -> %d (%s) rid=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
			id,
		)
	}
}
