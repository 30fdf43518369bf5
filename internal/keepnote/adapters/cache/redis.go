// Package cache содержит реализацию кэширования с использованием Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/ports/cache"
	"keepnote/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet    = "get"
	LogMethodSet    = "set"
	LogMethodDelete = "delete"

	ErrorFailedToGet    = "failed to get value from redis"
	ErrorFailedToSet    = "failed to set value in redis"
	ErrorFailedToDelete = "failed to delete value from redis"
)

// RedisCache реализует интерфейс Cache поверх общего клиента Redis.
// Клиентом владеет вызывающий код, RedisCache его не закрывает.
type RedisCache struct {
	client     redis.Cmdable
	defaultTTL time.Duration
}

var _ cache.Cache = (*RedisCache)(nil)

// NewRedisCache создает новый экземпляр RedisCache.
func NewRedisCache(client redis.Cmdable, defaultTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// Get получает значение по ключу.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		logger.Log(ctx).Error(ctx, ErrorFailedToGet,
			zap.String("method", LogMethodGet), zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set устанавливает значение для ключа; нулевой ttl заменяется значением по умолчанию.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToSet,
			zap.String("method", LogMethodSet), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Delete удаляет значение по ключу.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToDelete,
			zap.String("method", LogMethodDelete), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}

	return nil
}
