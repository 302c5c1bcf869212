package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs each request with method, path, client, status, latency and
// response size. Gin errors attached by handlers are appended when present.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}

		if len(c.Errors) > 0 {
			log.Printf("[%s] %s %s %d %s %dB errors=%s",
				c.Request.Method, path, c.ClientIP(), c.Writer.Status(), latency, size, c.Errors.String())
			return
		}
		log.Printf("[%s] %s %s %d %s %dB",
			c.Request.Method, path, c.ClientIP(), c.Writer.Status(), latency, size)
	}
}
