// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"hotelvoice/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client, used for oracle response
// caching. The cache is an availability optimization only: when Redis is
// unreachable the client stays nil and callers skip caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Unlike a datastore, a
// missing cache is not fatal.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis cache unavailable, running without response cache", zap.Error(err))
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
