package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	pkgErrors "anchorpoint-proxy/pkg/errors"
	"anchorpoint-proxy/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.configureEngine()
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.gin.NoRoute(srv.routeFallback)
	srv.gin.NoMethod(srv.routeFallback)

	return nil
}

// configureEngine makes routing exact: no trailing-slash redirects, and unmatched
// methods reach the fallback instead of a bare 404.
func (srv HTTPServer) configureEngine() {
	srv.gin.RedirectTrailingSlash = false
	srv.gin.RedirectFixedPath = false
	srv.gin.HandleMethodNotAllowed = true

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		srv.l.Warnf(context.Background(), "Invalid trusted proxies %v, trusting none: %v", srv.trustedProxies, err)
		_ = srv.gin.SetTrustedProxies(nil)
	}
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.Recovery(),
		srv.mw.CORS(),
	)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	return srv.setupSearchDomain(context.Background(), srv.gin)
}

// routeFallback answers everything no route matched: wrong verbs get 405, wrong paths 404.
func (srv HTTPServer) routeFallback(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", "POST, OPTIONS")
		response.Error(c, pkgErrors.ErrMethodNotAllowed)
		return
	}
	response.Error(c, pkgErrors.ErrNotFound)
}
