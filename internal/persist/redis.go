package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "redis-persist",
		Timeout: 30 * time.Second,
	})
	return &RedisStore{
		client:  client,
		breaker: breaker,
	}
}

// RedisStore implements Store on Redis. Writes go through a circuit
// breaker so a dead Redis degrades to dropped saves instead of piling
// up timeouts on every cart mutation.
type RedisStore struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, storeKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := r.breaker.Execute(func() (struct{}, error) {
		if err := r.client.Set(ctx, storeKey(key), value, 0).Err(); err != nil {
			return struct{}{}, fmt.Errorf("redis set failed: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}

func storeKey(key string) string {
	return fmt.Sprintf("shop:%s", key)
}
