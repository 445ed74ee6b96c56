package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "admin_session:"

// RedisStore shares sessions across instances. Selected when REDIS_ADDR is
// configured; otherwise the in-memory store is used.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *RedisStore) Put(ctx context.Context, token string) error {
	return s.client.Set(ctx, redisKeyPrefix+token, "1", s.ttl).Err()
}

func (s *RedisStore) Has(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

var _ Store = (*RedisStore)(nil)
var _ Store = (*MemoryStore)(nil)
