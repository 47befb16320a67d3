package config

import (
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

var Cache *redis.Client

// InitializeCache connects the dashboard response cache. The cache is
// optional: when REDIS_URL is unset we still run, just without caching.
func InitializeCache() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Cache = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	log.Println("🔧 Redis cache initialized with address:", redisURL)
}
