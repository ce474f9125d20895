package middleware

import (
	"io"

	"github.com/gin-gonic/gin"

	"anchorpoint-proxy/pkg/response"
)

// Recovery turns a panic anywhere down the chain into a 500 error envelope.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		mw.l.Errorf(c.Request.Context(), "middleware.Recovery: panic recovered: %v", err)
		response.InternalError(c)
	})
}
