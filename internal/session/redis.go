package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// RedisStore keeps the credential in Redis, for deployments where the gateway
// runs more than one replica. No TTL: the token lives until logout.
type RedisStore struct {
	client *redis.Client
}

var _ ports.SessionStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("session read: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.client.Del(ctx, tokenKey).Err()
	}
	return s.client.Set(ctx, tokenKey, token, 0).Err()
}

func (s *RedisStore) IsActive(ctx context.Context) bool {
	token, err := s.Get(ctx)
	return err == nil && token != ""
}
