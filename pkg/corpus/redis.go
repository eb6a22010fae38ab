package corpus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists cases in Redis for corpora shared between machines
// (e.g., a CI fleet validating several candidates against one generation
// run). Payloads are stored under corpus:<task>:<idx>:in and :ans keys.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	Addr     string        // host:port, e.g. "localhost:6379"
	Password string        // optional
	DB       int           // redis database number
	TTL      time.Duration // 0 means no expiration
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

func redisKey(task string, idx int, part string) string {
	return fmt.Sprintf("corpus:%s:%d:%s", task, idx, part)
}

// WriteCase stores both payloads. The write is not transactional; a
// half-written case reads back as absent because ReadCase requires both keys.
func (s *RedisStore) WriteCase(ctx context.Context, task string, idx int, c Case) error {
	if err := s.client.Set(ctx, redisKey(task, idx, "in"), c.Input, s.ttl).Err(); err != nil {
		return fmt.Errorf("set input: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(task, idx, "ans"), c.Expected, s.ttl).Err(); err != nil {
		return fmt.Errorf("set expected: %w", err)
	}
	return nil
}

// ReadCase retrieves both payloads; a case missing either key is absent.
func (s *RedisStore) ReadCase(ctx context.Context, task string, idx int) (Case, bool, error) {
	input, err := s.client.Get(ctx, redisKey(task, idx, "in")).Bytes()
	if errors.Is(err, redis.Nil) {
		return Case{}, false, nil
	}
	if err != nil {
		return Case{}, false, err
	}
	expected, err := s.client.Get(ctx, redisKey(task, idx, "ans")).Bytes()
	if errors.Is(err, redis.Nil) {
		return Case{}, false, nil
	}
	if err != nil {
		return Case{}, false, err
	}
	return Case{Input: input, Expected: expected}, true, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
