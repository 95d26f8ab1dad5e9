package middleware

import (
	"github.com/gin-gonic/gin"

	"haitch/internal/infrastructure/ratelimit"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

// RateLimitMiddleware applies the shared fixed-window limiter per client IP.
// The counters live in Redis, so the limits hold across instances.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, log logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  log,
	}
}

// Limit rejects requests over the hourly or daily budget with 429. Counter
// backend failures also reject: an unavailable Redis must not open the
// metered endpoints.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		result, err := m.limiter.Allow(c.Request.Context(), clientIP)
		if err != nil {
			m.logger.Errorw("rate limit check failed", "client_ip", clientIP, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError("rate limit check failed"))
			c.Abort()
			return
		}

		if !result.Allowed {
			m.logger.Warnw("rate limit exceeded",
				"client_ip", clientIP,
				"hour_count", result.HourCount,
				"day_count", result.DayCount)
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
