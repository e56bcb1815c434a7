// Package redisview implements the view-cache port against Redis. Cached
// renders live under a key prefix; invalidating a view deletes its key and
// publishes the path on a channel so render nodes recompute on next access.
//
// Invalidation calls pass through a resilience pipeline:
//
//	Circuit Breaker → Rate Limiter → Retry → Redis
//
// Unlike the invoice mutations themselves, invalidation is idempotent, so
// retrying a failed attempt is always safe.
package redisview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/finchbooks/invoice-service/internal/platform/config"
	"github.com/finchbooks/invoice-service/internal/platform/telemetry"
	"github.com/finchbooks/invoice-service/internal/ports"
)

// Compile-time check that Cache implements ports.ViewCache.
var _ ports.ViewCache = (*Cache)(nil)

// Cache invalidates cached view renders stored in Redis.
type Cache struct {
	rdb       *redis.Client
	keyPrefix string
	channel   string
	breaker   *gobreaker.CircuitBreaker[struct{}]
	limiter   *rate.Limiter // nil when rate limiting is disabled
	retryCfg  retryConfig
	metrics   *telemetry.Metrics // nil when telemetry is disabled
	logger    *slog.Logger
}

// New connects a Redis client for view invalidation and verifies the
// connection with a ping. The metrics parameter may be nil, in which case
// invalidation metrics are not recorded.
func New(ctx context.Context, cfg *config.CacheConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "view-cache",
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.OpsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.OpsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Cache{
		rdb:       rdb,
		keyPrefix: cfg.KeyPrefix,
		channel:   cfg.Channel,
		breaker:   cb,
		limiter:   limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Invalidate deletes the cached render of the given view path and publishes
// the path on the invalidation channel. Both commands are sent in one
// pipeline round trip. The whole attempt is retried on transient failure;
// repeating it has no effect beyond the first success.
func (c *Cache) Invalidate(ctx context.Context, path string) error {
	start := time.Now()

	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.doWithRetry(ctx, path, func(ctx context.Context) error {
			pipe := c.rdb.Pipeline()
			pipe.Del(ctx, c.keyPrefix+path)
			pipe.Publish(ctx, c.channel, path)
			_, err := pipe.Exec(ctx)
			return err
		})
	})

	c.recordMetrics(ctx, path, start, err)

	if err != nil {
		return fmt.Errorf("invalidating view %s: %w", path, err)
	}
	return nil
}

// recordMetrics records the duration and outcome of an invalidation.
// Safe to call with nil metrics.
func (c *Cache) recordMetrics(ctx context.Context, path string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrViewPath.String(path),
		telemetry.AttrResult.String(result),
	)

	c.metrics.InvalidationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.InvalidationTotal.Add(ctx, 1, attrs)
}

// waitForRateLimit blocks until the limiter allows the operation or the
// context is canceled. Returns nil immediately when rate limiting is
// disabled.
func (c *Cache) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// Close releases the Redis client.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Name identifies the cache in health check results.
func (c *Cache) Name() string {
	return "redis"
}

// HealthCheck reports cache availability via a ping.
func (c *Cache) HealthCheck(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
