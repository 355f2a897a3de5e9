package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	commitLockTTL  = 5 * time.Second
	clearScanCount = 500
)

// RedisBackend keeps one string value per key. Multi-key writes run in a MULTI/EXEC
// transaction while holding a redislock so two processes never interleave commits.
type RedisBackend struct {
	client  *redis.Client
	locker  *redislock.Client
	lockKey string
}

func NewRedisBackend(client *redis.Client, locker *redislock.Client, lockKey string) *RedisBackend {
	if locker == nil {
		locker = redislock.New(client)
	}
	if lockKey == "" {
		lockKey = "smartpos:commit-lock"
	}
	return &RedisBackend{client: client, locker: locker, lockKey: lockKey}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

func (b *RedisBackend) SetMany(ctx context.Context, values map[string][]byte) error {
	lock, err := b.locker.Obtain(ctx, b.lockKey, commitLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 40),
	})
	if err != nil {
		return fmt.Errorf("obtain commit lock: %w", err)
	}
	defer lock.Release(context.WithoutCancel(ctx))

	_, err = b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, k, v, 0)
		}
		return nil
	})
	return err
}

// Clear deletes keys matching prefix*. An empty prefix flushes the selected database.
func (b *RedisBackend) Clear(ctx context.Context, prefix string) error {
	if prefix == "" {
		return b.client.FlushDB(ctx).Err()
	}
	var cursor uint64
	for {
		keys, next, err := b.client.Scan(ctx, cursor, prefix+"*", clearScanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := b.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
