package db

import (
	"context"
	"os"

	"hostelhub-backend/utils"

	"github.com/redis/go-redis/v9"
)

var (
	RedisCtx    = context.Background()
	RedisClient *redis.Client
)

// InitRedis connects the client used by the per-user rate limiters. Redis is
// optional: when REDIS_ADDRESS is unset or the ping fails, the limiters are
// disabled and the service keeps running.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		utils.LogInfo("REDIS_ADDRESS not set, rate limiting disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(RedisCtx).Result(); err != nil {
		utils.LogError(err, "Failed to connect to Redis, rate limiting disabled")
		return
	}

	RedisClient = client
	utils.LogSuccess("Redis connection successful")
}
