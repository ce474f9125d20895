package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request once the chain has finished.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
		default:
			mw.l.Infof(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
		}
	}
}
