package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"chart_backend/internal/feature/chart/adapters"
	"chart_backend/internal/feature/chart/usecase"
	"chart_backend/internal/platform/cache"
)

// NewChartSource builds the chart lookup pipeline. If Redis is available
// the usecase is wrapped in a caching decorator; otherwise every request
// resamples from the database.
func NewChartSource(db *gorm.DB, rdb *redis.Client) cache.ChartSource {
	repo := adapters.NewMinuteBarRepository(db)
	uc := usecase.NewChartUsecase(repo)
	if rdb == nil {
		return uc
	}

	// Entries turn over as new minutes are ingested, so the TTL stays short.
	// An entry written just before the open must not outlive it.
	ttl := 5 * time.Minute
	if until := cache.TimeUntilNextSessionOpen(); until < ttl {
		ttl = until
	}
	return cache.NewCachingChartSource(rdb, ttl, uc, "charts")
}
