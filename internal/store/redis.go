package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

const redisKeyPrefix = "gymtracker::"

type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.get")
	span.SetAttributes(attribute.String("key", key))
	defer func() {
		if errors.Is(err, ErrNotFound) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	value, err := s.redisClient.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get [%s]: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.set")
	span.SetAttributes(attribute.String("key", key), attribute.Int("size", len(value)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.redisClient.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Del(ctx context.Context, keys ...string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.del")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, redisKeyPrefix+k)
	}
	if err := s.redisClient.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del %v: %w", keys, err)
	}
	return nil
}
