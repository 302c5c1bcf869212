package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobboard-api/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient dials Redis and verifies the connection. The caller treats
// Redis as optional: a nil client means filter caching is skipped entirely.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to Redis at %s: %w", cfg.Addr, err)
	}
	log.Printf("Redis cache ready at %s (db %d)", cfg.Addr, cfg.DB)
	return rdb, nil
}
