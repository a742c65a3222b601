package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/conquerblocks/nft-marketplace/internal/api/shared/errors"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/ratelimit"
)

// RateLimit limits requests per wallet address, falling back to the client IP
// for requests without a session. A nil limiter disables it.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if subject, ok := GetAuthSubject(c); ok {
			key = "address:" + subject.Hex()
		}

		res, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Writes are not blocked by a rate limiter outage
			logger.WarnCtx(c.Request.Context(), "Rate limit check failed", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			apiErr := apierrors.NewTooManyRequestsError("Rate limit exceeded", "retry after "+res.RetryAfter.String())
			c.AbortWithStatusJSON(apiErr.StatusCode(), apiErr)
			return
		}

		c.Next()
	}
}
