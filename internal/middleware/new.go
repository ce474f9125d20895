package middleware

import (
	"strings"

	"anchorpoint-proxy/pkg/log"
)

// CORSConfig is the cross-origin policy applied to every response.
type CORSConfig struct {
	// AllowedOrigins is the allow-list. Empty or containing "*" allows any origin.
	AllowedOrigins []string
	// Strict omits Access-Control-Allow-Origin for unlisted origins instead of falling back to "*".
	Strict bool
}

// Config is the dependency bag passed to New().
type Config struct {
	CORS            CORSConfig
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	cors        CORSConfig
	allowAny    bool
	origins     map[string]struct{}
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		cors:    cfg.CORS,
		origins: make(map[string]struct{}, len(cfg.CORS.AllowedOrigins)),
	}

	for _, o := range cfg.CORS.AllowedOrigins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			mw.allowAny = true
		}
		mw.origins[o] = struct{}{}
	}
	if len(mw.origins) == 0 {
		mw.allowAny = true
	}

	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}

	return mw
}
