package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anchorpoint-proxy/pkg/log"
)

// RequestID reuses a sane inbound X-Request-ID or mints a UUID, echoes it back
// and stores it on the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
