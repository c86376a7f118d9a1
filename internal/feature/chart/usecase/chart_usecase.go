// Package usecase implements the application logic of the chart feature.
package usecase

import (
	"context"
	"fmt"

	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/resample"
)

const (
	// DefaultWindowDays is the trading-day window used when the caller does
	// not ask for a specific one.
	DefaultWindowDays = 7

	// MaxWindowDays caps how far back a single chart request may reach.
	MaxWindowDays = 60
)

// MinuteBarRepository loads stored minute bars for a symbol in ascending
// timestamp order. limit <= 0 means no limit; a positive limit returns the
// most recent rows, still ascending.
type MinuteBarRepository interface {
	Find(ctx context.Context, symbol string, limit int) ([]entity.MinuteBar, error)
}

// ChartUsecase serves hourly session charts built from stored minute bars.
type ChartUsecase struct {
	repo MinuteBarRepository
}

func NewChartUsecase(repo MinuteBarRepository) *ChartUsecase {
	return &ChartUsecase{repo: repo}
}

// GetHourlyChart loads the symbol's minute history and resamples it into
// hourly session bars for the last windowDays trading days. Windows above
// MaxWindowDays are clamped; non-positive windows are served as-is and
// yield an empty chart.
func (u *ChartUsecase) GetHourlyChart(ctx context.Context, symbol string, windowDays int) (entity.PriceChart, error) {
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}

	minutes, err := u.repo.Find(ctx, symbol, 0)
	if err != nil {
		return entity.PriceChart{}, fmt.Errorf("failed to load minute bars for %s: %w", symbol, err)
	}

	return resample.RegularSession1H(symbol, minutes, windowDays), nil
}
