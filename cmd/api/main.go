package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"anchorpoint-proxy/config"
	_ "anchorpoint-proxy/docs" // Swagger docs
	"anchorpoint-proxy/internal/httpserver"
	"anchorpoint-proxy/internal/middleware"
	"anchorpoint-proxy/internal/search"
	searchHTTP "anchorpoint-proxy/internal/search/delivery/http"
	"anchorpoint-proxy/internal/search/usecase"
	"anchorpoint-proxy/pkg/log"
	"anchorpoint-proxy/pkg/perplexica"
)

// @title       AnchorPoint Search Proxy API
// @description Forwards AnchorPoint search queries to the AI search service with defaults and CORS applied.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AnchorPoint search proxy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Upstream URL: %s", cfg.Upstream.APIURL)

	// 3. Upstream client
	client, err := perplexica.New(cfg.Upstream.APIURL, cfg.Upstream.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize search client: ", err)
		return err
	}
	client.SetTimeout(cfg.Upstream.Timeout)
	defer client.CloseIdleConnections()

	// 4. Search domain
	searchUC := usecase.New(logger, client, cfg.Search.Apply(search.DefaultDefaults()))
	searchHandler := searchHTTP.New(logger, searchUC, cfg.HTTPServer.MaxBodyBytes)

	if len(cfg.CORS.Origins) == 0 {
		logger.Warn(ctx, "CORS_ORIGINS is empty, every origin is allowed")
	}

	mw := middleware.New(logger, middleware.Config{
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.Origins,
			Strict:         cfg.CORS.Strict,
		},
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware:      mw,
		SearchHandler:   searchHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
