package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

const redisKeyPrefix = "weathertracker:"

// RedisCacheProvider implements CacheProvider on top of a Redis database
type RedisCacheProvider struct {
	hitCounter

	client *redis.Client
}

// NewRedisCacheProvider connects to Redis and verifies the connection with PING
func NewRedisCacheProvider(cfg *ports.RedisConfig) (*RedisCacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	return &RedisCacheProvider{client: client}, nil
}

func (r *RedisCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		r.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}
	if err != nil {
		return nil, errors.NewCacheError("redis get failed", err)
	}

	r.RecordHit()
	return val, nil
}

func (r *RedisCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	if err := r.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err(); err != nil {
		return errors.NewCacheError("redis set failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return errors.NewCacheError("redis delete failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	count, err := r.client.Exists(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return false, errors.NewCacheError("redis exists failed", err)
	}
	return count > 0, nil
}

// Clear removes only keys written by this application
func (r *RedisCacheProvider) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.NewCacheError("redis clear failed", err)
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewCacheError("redis clear failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("redis ping failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}
