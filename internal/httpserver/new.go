package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"anchorpoint-proxy/internal/middleware"
	searchHTTP "anchorpoint-proxy/internal/search/delivery/http"
	"anchorpoint-proxy/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	trustedProxies  []string
	mw              middleware.Middleware

	// Search domain
	searchHandler searchHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string
	Middleware      middleware.Middleware

	// Search domain
	SearchHandler searchHTTP.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		trustedProxies:  cfg.TrustedProxies,
		mw:              cfg.Middleware,
		searchHandler:   cfg.SearchHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.searchHandler == nil {
		return errors.New("search handler is required")
	}
	return nil
}
