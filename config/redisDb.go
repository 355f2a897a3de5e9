package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var (
	rdb    *redis.Client
	locker *redislock.Client
)

func GetRedisDB() *redis.Client {
	return rdb
}

func GetRedisLock() *redislock.Client {
	return locker
}

// ConnectRedisWithRetry connects and sets the global Redis client + lock client.
// It gives up after cfg.ConnectAttempts failed pings (0 retries forever).
func ConnectRedisWithRetry(ctx context.Context, cfg AppConfig) (*redis.Client, error) {
	var attempt int
	for {
		attempt++
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: 100,
		})
		err := client.Ping(ctx).Err()
		if err == nil {
			rdb = client
			locker = redislock.New(rdb)
			log.Printf("connected to redis (attempt=%d addr=%s)", attempt, cfg.RedisAddress)
			return rdb, nil
		}
		_ = client.Close()

		if cfg.ConnectAttempts > 0 && attempt >= cfg.ConnectAttempts {
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddress, err)
		}
		sleep := retryDelay(attempt)
		log.Printf("failed to connect redis (attempt=%d addr=%s): %v; retrying in %s", attempt, cfg.RedisAddress, err, sleep)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
}
