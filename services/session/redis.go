package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voiceform/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "form:session:"

// RedisStore keeps sessions as JSON values with a TTL refreshed on each Put.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.FormSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	var fs models.FormSession
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &fs, nil
}

func (s *RedisStore) Put(ctx context.Context, fs *models.FormSession) error {
	b, err := json.Marshal(fs)
	if err != nil {
		return err
	}
	// A zero ttl stores the key without expiry.
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+fs.SessionID, b, ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", fs.SessionID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
