package http

import (
	"github.com/gin-gonic/gin"

	"anchorpoint-proxy/internal/middleware"
)

// RegisterRoutes maps POST /query to the handler behind the per-client rate limit.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/query", mw.RateLimit(), h.Query)
}
