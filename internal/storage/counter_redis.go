package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCounterStore issues order numbers with INCR on a single key, so the
// increment is atomic across processes as well.
type RedisCounterStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisCounterStore(client *redis.Client, key string) *RedisCounterStore {
	if key == "" {
		key = "orders:last_id"
	}
	return &RedisCounterStore{Client: client, Key: key}
}

func (s *RedisCounterStore) NextOrderID(ctx context.Context) (int, error) {
	next, err := s.Client.Incr(ctx, s.Key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment order counter: %w", err)
	}
	return int(next), nil
}
