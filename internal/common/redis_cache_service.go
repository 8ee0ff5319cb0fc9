package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"avialab/flightdeck/internal/config"
	"avialab/flightdeck/internal/logging"

	"github.com/redis/go-redis/v9"
)

// RedisCacheService implements CacheInterface on Redis. Values round-trip
// through JSON, so callers get back generic maps/slices rather than the
// original Go types.
type RedisCacheService struct {
	client *redis.Client
	ctx    context.Context
}

var _ CacheInterface = (*RedisCacheService)(nil)

func NewRedisCacheService(cfg config.Config) (*RedisCacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCacheService{client: client, ctx: ctx}, nil
}

func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("Redis cache marshal failed", "key", key, "error", err.Error())
		return
	}
	if err := r.client.Set(r.ctx, key, data, duration).Err(); err != nil {
		logging.Warn("Redis cache set failed", "key", key, "error", err.Error())
	}
}

func (r *RedisCacheService) Get(key string) (interface{}, bool) {
	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logging.Warn("Redis cache get failed", "key", key, "error", err.Error())
		return nil, false
	}

	var result interface{}
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		logging.Warn("Redis cache unmarshal failed", "key", key, "error", err.Error())
		return nil, false
	}
	return result, true
}

func (r *RedisCacheService) Delete(key string) {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		logging.Warn("Redis cache delete failed", "key", key, "error", err.Error())
	}
}

func (r *RedisCacheService) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := r.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	r.Set(key, val, duration)
	return val, nil
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
