// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/dto"
)

// RateLimiter applies a fixed-window rate limit backed by Redis.
type RateLimiter struct {
	cache  *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter constructs a RateLimiter with the given limit and window.
func NewRateLimiter(cache *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		cache:  cache,
		limit:  limit,
		window: window,
	}
}

// Middleware enforces the limit, keyed by client IP and the authenticated merchant when present.
// Redis failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.cache == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		key := rl.key(c)
		ctx := c.Request.Context()

		// INCR and EXPIRE NX commit together so a counter never outlives its window.
		var incr *redis.IntCmd
		_, err := rl.cache.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, rl.window)
			return nil
		})
		if err != nil {
			slog.Warn("Rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		count := incr.Val()

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		if count > int64(rl.limit) {
			c.Header("X-RateLimit-Remaining", "0")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(int64(rl.limit)-count, 10))

		c.Next()
	}
}

func (rl *RateLimiter) key(c *gin.Context) string {
	ip := c.ClientIP()
	if userID, ok := GetUserIDFromContext(c); ok && userID != uuid.Nil {
		return fmt.Sprintf("ratelimit:%s:%s", ip, userID.String())
	}
	return fmt.Sprintf("ratelimit:%s", ip)
}
