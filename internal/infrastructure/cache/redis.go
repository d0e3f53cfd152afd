package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/karakusgokhan/team-hub/pkg/config"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

var log = logger.NewLogger()

// Custom error types
var (
	ErrCacheNotFound   = errors.New("cache: key not found")
	ErrCacheConnection = errors.New("cache: connection error")
	ErrInvalidConfig   = errors.New("cache: invalid configuration")
)

// Config holds the configuration for the Redis client
type Config struct {
	Addr             string
	Password         string
	DB               int
	PoolSize         int
	MinIdleConns     int
	MaxRetries       int
	ConnTimeout      time.Duration
	OperationTimeout time.Duration
	DefaultTTL       time.Duration
	KeyPrefix        string
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PoolSize:         20,
		MinIdleConns:     2,
		MaxRetries:       3,
		ConnTimeout:      5 * time.Second,
		OperationTimeout: 2 * time.Second,
		DefaultTTL:       time.Minute,
		KeyPrefix:        "teamhub:",
	}
}

// NewConfigFromEnv creates a Redis config from project configuration
func NewConfigFromEnv(cfg *config.Config) *Config {
	c := DefaultConfig()
	c.Addr = fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c.Password = cfg.Redis.Password
	c.DB = cfg.Redis.DB
	return c
}

// Metrics tracks cache hit/miss statistics with atomic operations
type Metrics struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// RedisClient wraps the Redis client used to cache rendered list and
// grid responses. A nil *RedisClient is valid and means caching is off.
type RedisClient struct {
	client    *redis.Client
	metrics   *Metrics
	config    *Config
	closeOnce sync.Once
	health    int32 // 0 = healthy, 1 = unhealthy
}

// NewRedisClient creates a new Redis client with the provided configuration
func NewRedisClient(cfg *Config) (*RedisClient, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidConfig)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	r := &RedisClient{
		client:  client,
		config:  cfg,
		metrics: &Metrics{},
	}

	go r.healthCheckLoop()

	return r, nil
}

// healthCheckLoop periodically checks Redis health
func (r *RedisClient) healthCheckLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), r.config.OperationTimeout)
		if err := r.HealthCheck(ctx); err != nil {
			atomic.StoreInt32(&r.health, 1)
			log.Error("Redis health check failed", zap.Error(err))
		} else {
			atomic.StoreInt32(&r.health, 0)
		}
		cancel()
	}
}

// IsHealthy returns whether Redis is currently healthy. A nil client is
// never healthy, so callers can skip the cache without a nil check.
func (r *RedisClient) IsHealthy() bool {
	return r != nil && atomic.LoadInt32(&r.health) == 0
}

func (r *RedisClient) withContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, r.config.OperationTimeout)
	}
	return ctx, func() {}
}

func (r *RedisClient) prefixKey(key string) string {
	return r.config.KeyPrefix + key
}

// Get retrieves a value from the cache
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	if !r.IsHealthy() {
		return "", ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefixKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			r.metrics.misses.Add(1)
			return "", fmt.Errorf("%w: %s", ErrCacheNotFound, key)
		}
		return "", fmt.Errorf("%w: %v", ErrCacheConnection, err)
	}
	r.metrics.hits.Add(1)
	return val, nil
}

// Set stores a value in the cache. A zero ttl uses the default TTL.
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if !r.IsHealthy() {
		return ErrCacheConnection
	}
	if ttl <= 0 {
		ttl = r.config.DefaultTTL
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	return r.client.Set(ctx, r.prefixKey(key), value, ttl).Err()
}

// Delete removes values from the cache
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	prefixedKeys := make([]string, len(keys))
	for i, key := range keys {
		prefixedKeys[i] = r.prefixKey(key)
	}
	return r.client.Del(ctx, prefixedKeys...).Err()
}

// ClearByPattern removes all cache entries matching the given pattern.
// Mutations call this so stale lists never outlive an optimistic update.
func (r *RedisClient) ClearByPattern(ctx context.Context, pattern string) error {
	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	iter := r.client.Scan(ctx, 0, r.prefixKey(pattern), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

// HealthCheck checks if Redis is responding
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// ExportMetrics returns hit/miss counters for the metrics endpoint
func (r *RedisClient) ExportMetrics() map[string]float64 {
	if r == nil {
		return nil
	}
	return map[string]float64{
		"cache_hits":   float64(r.metrics.hits.Load()),
		"cache_misses": float64(r.metrics.misses.Load()),
	}
}

// Close properly closes the Redis client
func (r *RedisClient) Close() error {
	if r == nil {
		return nil
	}
	var err error
	r.closeOnce.Do(func() {
		err = r.client.Close()
	})
	return err
}
