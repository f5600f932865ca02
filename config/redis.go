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

// ConnectRedis wires the rate limiter backend. Redis is optional for the
// gateway: without it the limiter middleware passes requests through.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, rate limiting disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	// test connection
	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		log.Printf("❌ failed to connect to Redis, rate limiting disabled: %v", err)
		RedisClient = nil
		return
	}
	fmt.Println("✅ Connected to Redis:", res)
}
