// Package ratelimit ограничивает частоту операций в фиксированном окне на Redis.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "ratelimit:"

// RedisLimiter считает операции по ключу в окне фиксированной длины. Счетчик окна живет в Redis,
// поэтому лимит общий для всех экземпляров сервиса.
type RedisLimiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(rdb redis.Cmdable, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow увеличивает счетчик ключа в текущем окне и сообщает, не превышен ли лимит.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := r.windowKey(key)

	count, err := r.rdb.Incr(ctx, windowKey).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr `%s`: %w", windowKey, err)
	}
	if count == 1 {
		// окно открыто этим вызовом
		if expErr := r.rdb.Expire(ctx, windowKey, r.window).Err(); expErr != nil {
			return false, fmt.Errorf("ratelimit expire `%s`: %w", windowKey, expErr)
		}
	}
	return count <= r.limit, nil
}

func (r *RedisLimiter) windowKey(key string) string {
	window := r.now().UnixNano() / int64(r.window)
	return keyPrefix + key + ":" + strconv.FormatInt(window, 10)
}

// NewRedisClient подключается к Redis и проверяет соединение.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping `%s`: %w", addr, err)
	}
	return rdb, nil
}
