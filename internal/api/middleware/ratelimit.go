package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-leaderboard/internal/api/shared/errors"
	"github.com/feral-file/ff-leaderboard/internal/logger"
	"github.com/feral-file/ff-leaderboard/internal/ratelimit"
)

// RateLimit returns a gin middleware limiting requests per client ip within scope
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		decision := limiter.Allow(c.Request.Context(), key)

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if decision.Allowed {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))

		logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
			zap.String("scope", scope),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("retry_after", retryAfter),
		)
		abortWithError(c, apierrors.NewTooManyRequestsError("Too many requests", "retry after "+strconv.Itoa(retryAfter)+"s"))
	}
}
