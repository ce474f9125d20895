package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "anchorpoint-proxy/pkg/errors"
	"anchorpoint-proxy/pkg/response"
)

// RateLimit enforces the per-client-IP request budget. It is a no-op when disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.rateLimiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !mw.rateLimiter.Allow(ip) {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", ip)
			c.Header(HeaderRetryAfter, strconv.Itoa(mw.rateLimiter.retryAfterSeconds()))
			response.Error(c, pkgErrors.ErrRateLimited)
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, expiring idle clients.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000,         // Max unique clients tracked
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// retryAfterSeconds is the time to refill one token, rounded up.
func (rl *rateLimiter) retryAfterSeconds() int {
	secs := int(math.Ceil(1 / float64(rl.rate)))
	if secs < 1 {
		secs = 1
	}
	return secs
}
