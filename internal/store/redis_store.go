package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each value as a redis hash. T must carry redis field tags.
type RedisStore[T any] struct {
	rdb       redis.UniversalClient
	keyPrefix string
}

func (s *RedisStore[T]) Get(ctx context.Context, key string) (*T, error) {
	cmd := s.rdb.HGetAll(ctx, s.keyPrefix+key)
	if err := cmd.Err(); err != nil {
		return nil, err
	}
	if len(cmd.Val()) == 0 {
		return nil, ErrNotFound
	}
	var obj T
	if err := cmd.Scan(&obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

func (s *RedisStore[T]) Set(ctx context.Context, key string, val T, expiresIn time.Duration) error {
	if expiresIn == 0 {
		return s.rdb.HSet(ctx, s.keyPrefix+key, val).Err()
	}
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, s.keyPrefix+key, val)
	pipe.Expire(ctx, s.keyPrefix+key, expiresIn)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore[T]) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.keyPrefix+key).Err()
}

func NewRedisStore[T any](db redis.UniversalClient, keyPrefix string) *RedisStore[T] {
	return &RedisStore[T]{
		rdb:       db,
		keyPrefix: keyPrefix,
	}
}
