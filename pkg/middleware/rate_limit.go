package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit guards the credential endpoints against brute-force attempts.
// Counters live in redis per client and path; unauthenticated callers are
// keyed by IP. When the counter read fails the request is let through — a
// degraded redis must not lock everyone out of login.
func RateLimit(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.GetString("user_id")
		if client == "" {
			client = c.ClientIP()
		}

		key := fmt.Sprintf("gospelkeys:ratelimit:%s:%s", c.Request.URL.Path, client)

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
