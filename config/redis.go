package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects to the snapshot/rate-limit Redis. Returns false when
// REDIS_URL is not set, in which case the caller falls back to the in-memory
// store and skips the rate limiter.
func ConnectRedis() bool {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, snapshots will use the in-memory store")
		return false
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	// test connection
	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("❌ failed to connect to Redis: %v", err))
	}

	log.Println("✅ Connected to Redis:", res)
	return true
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err == nil {
			log.Println("✅ Redis connection closed")
		}
	}
}
