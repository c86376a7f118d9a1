// Package adapters provides collector implementations for the packet
// feature.
package adapters

import (
	"context"

	"chart_backend/internal/feature/packet/domain/entity"
	"chart_backend/internal/feature/packet/usecase"
)

// NullCollectors satisfies every optional collector interface with empty
// results. Used when a deployment has no news, senate, or fundamentals
// provider configured.
type NullCollectors struct{}

var _ usecase.NewsCollector = NullCollectors{}
var _ usecase.SenateCollector = NullCollectors{}
var _ usecase.FinanceCollector = NullCollectors{}

func (NullCollectors) CollectNews(ctx context.Context, symbol string) ([]entity.NewsItem, error) {
	return nil, nil
}

func (NullCollectors) CollectSenateEvents(ctx context.Context, symbol string) ([]entity.SenateEvent, error) {
	return nil, nil
}

func (NullCollectors) CollectFinanceSnapshot(ctx context.Context, symbol string) (*entity.FinanceSnapshot, error) {
	return nil, nil
}
