package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/farmstead/backend/internal/domain/report"
	"github.com/farmstead/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStatisticsCache caches statistics snapshots in Redis so multiple
// instances share the same snapshots. Entries are JSON; a failed read or
// decode counts as a miss.
type RedisStatisticsCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// NewRedisStatisticsCache connects to Redis and returns a statistics cache
func NewRedisStatisticsCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisStatisticsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStatisticsCacheWithClient(client, logger), nil
}

// NewRedisStatisticsCacheWithClient creates a cache over an existing client
func NewRedisStatisticsCacheWithClient(client *redis.Client, logger *zap.Logger) *RedisStatisticsCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStatisticsCache{
		client:    client,
		keyPrefix: "report:",
		logger:    logger,
	}
}

// Get returns a cached snapshot, or false on miss
func (c *RedisStatisticsCache) Get(ctx context.Context, key string) (*report.FarmStatistics, bool) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("statistics cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var stats report.FarmStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		c.logger.Warn("statistics cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &stats, true
}

// Set stores a snapshot with a TTL. Failures are logged and swallowed; the
// cache is best effort.
func (c *RedisStatisticsCache) Set(ctx context.Context, key string, stats *report.FarmStatistics, ttl time.Duration) {
	data, err := json.Marshal(stats)
	if err != nil {
		c.logger.Warn("statistics cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.keyPrefix+key, data, ttl).Err(); err != nil {
		c.logger.Warn("statistics cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the underlying Redis client
func (c *RedisStatisticsCache) Close() error {
	return c.client.Close()
}
