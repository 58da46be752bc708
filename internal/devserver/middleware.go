package devserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hay-kot/tubenotes/internal/core/logging"
)

// requestLogger logs every request through zerolog in place of gin's stdout logger.
func requestLogger() gin.HandlerFunc {
	log := logging.Component("devserver")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		evt := log.Debug()
		if c.Writer.Status() >= 500 {
			evt = log.Error()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
