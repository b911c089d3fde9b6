// utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the shared Redis client. It stays nil when REDIS_ADDR is
// unset, in which case every cache call is a miss.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client from the environment.
func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		GetLogger().Info("REDIS_ADDR not set, catalog caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Failed to connect to Redis, caching disabled", zap.Error(err))
		return
	}
	CacheClient = client
}

// CacheGetJSON loads a cached value into dest. Returns false on miss,
// disabled cache, or decode failure.
func CacheGetJSON(ctx context.Context, key string, dest interface{}) bool {
	if CacheClient == nil {
		return false
	}
	raw, err := CacheClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// CacheSetJSON stores a value under key with a TTL. Failures are logged and
// otherwise ignored.
func CacheSetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if CacheClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := CacheClient.Set(ctx, key, raw, ttl).Err(); err != nil {
		GetLogger().Warn("Failed to write cache entry", zap.Error(err))
	}
}

// CacheInvalidate drops the given keys.
func CacheInvalidate(ctx context.Context, keys ...string) {
	if CacheClient == nil || len(keys) == 0 {
		return
	}
	if err := CacheClient.Del(ctx, keys...).Err(); err != nil {
		GetLogger().Warn("Failed to invalidate cache", zap.Error(err))
	}
}
