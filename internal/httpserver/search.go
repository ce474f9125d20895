package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	searchHTTP "anchorpoint-proxy/internal/search/delivery/http"
)

// setupSearchDomain registers the search proxy routes.
// The handler itself is built in cmd/api (client -> usecase -> handler).
func (srv HTTPServer) setupSearchDomain(ctx context.Context, r gin.IRoutes) error {
	searchHTTP.RegisterRoutes(r, srv.searchHandler, srv.mw)

	srv.l.Infof(ctx, "Search domain registered at POST /query")
	return nil
}
