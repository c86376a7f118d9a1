// Package cache provides caching decorators for chart lookups.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/platform/metrics"
)

// ChartSource is the lookup being decorated.
type ChartSource interface {
	GetHourlyChart(ctx context.Context, symbol string, windowDays int) (entity.PriceChart, error)
}

// CachingChartSource decorates a ChartSource with Redis caching. Resampling
// the same minute history produces the same chart, so entries only need to
// turn over as new minutes are ingested; a short TTL handles that without
// explicit invalidation.
type CachingChartSource struct {
	inner     ChartSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ ChartSource = (*CachingChartSource)(nil)

// NewCachingChartSource decorates inner with Redis caching. If ttl is not
// positive it defaults to 5 minutes; an empty namespace defaults to
// "charts". A nil Redis client disables caching entirely.
func NewCachingChartSource(rdb *redis.Client, ttl time.Duration, inner ChartSource, namespace string) *CachingChartSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "charts"
	}
	return &CachingChartSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetHourlyChart checks the cache first and falls back to the inner source.
// Cache writes are best effort; a failing Redis never fails the request.
func (c *CachingChartSource) GetHourlyChart(ctx context.Context, symbol string, windowDays int) (entity.PriceChart, error) {
	if c.rdb == nil {
		return c.inner.GetHourlyChart(ctx, symbol, windowDays)
	}

	key := c.cacheKey(symbol, windowDays)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.PriceChart
		if err := json.Unmarshal(b, &out); err == nil {
			metrics.CacheHits.WithLabelValues(metrics.ResultHit).Inc()
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}
	metrics.CacheHits.WithLabelValues(metrics.ResultMiss).Inc()

	out, err := c.inner.GetHourlyChart(ctx, symbol, windowDays)
	if err != nil {
		return entity.PriceChart{}, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingChartSource) cacheKey(symbol string, windowDays int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(strings.ToUpper(symbol)), windowDays)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
