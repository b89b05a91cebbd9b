// pkg/configs/redis_config.go
package configs

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient เชื่อมต่อ Redis ด้วยค่าจาก environment
// ใช้เป็น cache layer หน้า storage backend (เปิดด้วย CACHE_ENABLED=true)
func NewRedisClient() (*redis.Client, error) {
	host := getEnv("REDIS_HOST", "localhost")
	port := getEnv("REDIS_PORT", "6379")
	password := getEnv("REDIS_PASSWORD", "")

	db := 0
	if dbStr := getEnv("REDIS_DB", "0"); dbStr != "" {
		parsed, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		db = parsed
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	log.Printf("[Redis] Connected to %s:%s (db %d)", host, port, db)
	return rdb, nil
}
