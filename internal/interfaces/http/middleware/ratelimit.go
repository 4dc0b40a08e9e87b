package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portico/internal/infrastructure/ratelimit"
	"portico/internal/shared/logger"
	"portico/internal/shared/utils"
)

// GateRateLimit throttles gate validation scans per client IP. The gate
// endpoint is hit by unattended scanner hardware, so a runaway device must
// not be able to hammer the database.
func GateRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ratelimit.GateKey(c.ClientIP())

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			// Redis being down must not block the gate.
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
