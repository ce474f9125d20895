package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS sets the allow-origin/credentials headers on every response and answers
// OPTIONS preflights with 204 without running the rest of the chain.
func (mw Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader(HeaderOrigin)
		h := c.Writer.Header()

		if allowOrigin, ok := mw.resolveOrigin(c, origin); ok {
			h.Set(HeaderAllowOrigin, allowOrigin)
			if allowOrigin != "*" {
				h.Add(HeaderVary, HeaderOrigin)
			}
		}
		h.Set(HeaderAllowCredentials, "true")

		if c.Request.Method == http.MethodOptions {
			h.Set(HeaderAllowMethods, PreflightAllowMethods)
			h.Set(HeaderAllowHeaders, PreflightAllowHeaders)
			h.Set(HeaderMaxAge, PreflightMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// resolveOrigin picks the Access-Control-Allow-Origin value for origin.
// Unlisted origins fall back to "*" unless the policy is strict.
func (mw Middleware) resolveOrigin(c *gin.Context, origin string) (string, bool) {
	if mw.allowAny {
		if origin != "" {
			return origin, true
		}
		return "*", true
	}

	if _, ok := mw.origins[origin]; ok && origin != "" {
		return origin, true
	}

	if mw.cors.Strict {
		return "", false
	}

	if origin != "" {
		mw.l.Warnf(c.Request.Context(), "middleware.CORS: origin %q not in allow-list, falling back to *", origin)
	}
	return "*", true
}
