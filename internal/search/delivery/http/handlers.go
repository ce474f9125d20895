package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anchorpoint-proxy/pkg/response"
)

// Query godoc
// @Summary     Search
// @Description Validates the query, merges default search options and forwards it to the upstream search service. The upstream answer is relayed unchanged.
// @Tags        Search
// @Accept      json
// @Produce     json
// @Param       body body     queryReqDoc         true "Search request"
// @Success     200  {object} queryRespDoc        "Upstream answer, relayed verbatim"
// @Failure     400  {object} response.ErrorResp  "Bad Request"
// @Failure     404  {object} response.ErrorResp  "Endpoint not found"
// @Failure     405  {object} response.ErrorResp  "Method not allowed"
// @Failure     429  {object} response.ErrorResp  "Too many requests"
// @Failure     500  {object} response.ErrorResp  "Upstream or internal error"
// @Failure     503  {object} response.ErrorResp  "Search service unavailable"
// @Router      /query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Query: rejected request: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Query(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Query: uc.Query: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Raw(c, http.StatusOK, output.Body)
}
