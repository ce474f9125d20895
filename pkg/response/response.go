package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "anchorpoint-proxy/pkg/errors"
)

// now is swapped in tests.
var now = time.Now

// NewErrorResp builds the error envelope for err.
func NewErrorResp(err *pkgErrors.HTTPError) ErrorResp {
	return ErrorResp{
		Error: ErrorBody{
			Code:      err.Code,
			Message:   err.Message,
			Timestamp: Timestamp(now()),
		},
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Raw sends an already-encoded JSON body unchanged.
func Raw(c *gin.Context, status int, body []byte) {
	c.Data(status, ContentTypeJSON, body)
}

// Error renders err as the error envelope and aborts the chain.
// Errors that are not *HTTPError become 500 INTERNAL_ERROR.
func Error(c *gin.Context, err error) {
	httpErr := pkgErrors.AsHTTPError(err)
	c.AbortWithStatusJSON(httpErr.StatusCode, NewErrorResp(httpErr))
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	Error(c, pkgErrors.ErrInternalServer)
}
