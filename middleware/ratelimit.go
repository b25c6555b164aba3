package middleware

import (
	"net/http"
	"time"

	"hostelhub-backend/db"

	"github.com/gin-gonic/gin"
)

// UserRateLimiter caps how many times a user may hit an endpoint within 24
// hours, keyed per user in Redis. When Redis is not configured the limiter
// is a no-op.
func UserRateLimiter(prefix string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db.RedisClient == nil {
			c.Next()
			return
		}

		userIDVal, _ := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
			c.Abort()
			return
		}

		userKey := prefix + ":" + userID

		count, err := db.RedisClient.Incr(db.RedisCtx, userKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// TTL starts with the first hit of the window
		if count == 1 {
			if err := db.RedisClient.Expire(db.RedisCtx, userKey, 24*time.Hour).Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := db.RedisClient.TTL(db.RedisCtx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
