// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"voiceform/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client backing the session store.
var SessionCacheClient *redis.Client

// InitSessionCache connects to the session Redis DB and verifies it with a ping.
func InitSessionCache(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis (sessions): %w", err)
	}
	SessionCacheClient = client
	return client, nil
}
