package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ratelimit"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

// RateLimiter enforces a per-IP request budget on sensitive routes,
// backed by the shared Redis counter.
type RateLimiter struct {
	limiter *ratelimit.RedisRateLimiter
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: ratelimit.NewRedisRateLimiter(redisClient, limit, window),
	}
}

// Limit returns a gin middleware keyed by client IP. Counter errors let
// the request through rather than blocking all traffic.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(context.Background(), "ip:"+c.ClientIP())
		if err != nil {
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
