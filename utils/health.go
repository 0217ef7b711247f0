package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func checkHealth(ctx context.Context, client *redis.Client) {
	status := HealthStatus{CheckedAt: time.Now()}
	if client != nil {
		ok := client.Ping(ctx).Err() == nil
		status.Redis = &ok
	}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
}

// StartHealthMonitor performs periodic health checks until ctx is done.
// A nil client means no external dependency is checked.
func StartHealthMonitor(ctx context.Context, client *redis.Client, every time.Duration) {
	checkHealth(ctx, client)
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				checkHealth(ctx, client)
			}
		}
	}()
}
