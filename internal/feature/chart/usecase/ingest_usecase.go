package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/platform/metrics"
)

// MarketRepository fetches recent minute bars for a symbol from an external
// market data provider.
type MarketRepository interface {
	GetMinuteBars(ctx context.Context, symbol string) ([]entity.MinuteBar, error)
}

// MinuteBarWriter persists fetched minute bars, replacing rows that share a
// symbol and timestamp.
type MinuteBarWriter interface {
	UpsertBatch(ctx context.Context, bars []entity.MinuteBar) error
}

// RateWaiter paces outbound market requests.
type RateWaiter interface {
	Wait(ctx context.Context) error
}

// IngestUsecase pulls minute bars from the market provider and stores them,
// pacing requests through a rate limiter.
type IngestUsecase struct {
	market  MarketRepository
	writer  MinuteBarWriter
	limiter RateWaiter
}

func NewIngestUsecase(market MarketRepository, writer MinuteBarWriter, limiter RateWaiter) *IngestUsecase {
	return &IngestUsecase{market: market, writer: writer, limiter: limiter}
}

// IngestSymbols fetches and stores minute bars for each symbol in turn.
// A failing symbol is logged and skipped so one bad ticker does not abort
// the whole run. The returned error is non-nil only when every symbol
// failed.
func (u *IngestUsecase) IngestSymbols(ctx context.Context, symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}

	failed := 0
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" {
			continue
		}

		if err := u.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter interrupted: %w", err)
		}

		if err := u.ingestOne(ctx, symbol); err != nil {
			slog.Error("failed to ingest symbol", "symbol", symbol, "error", err)
			failed++
		}
	}

	if failed == len(symbols) {
		return fmt.Errorf("all %d symbols failed to ingest", failed)
	}
	return nil
}

func (u *IngestUsecase) ingestOne(ctx context.Context, symbol string) error {
	bars, err := u.market.GetMinuteBars(ctx, symbol)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if len(bars) == 0 {
		slog.Warn("market returned no minute bars", "symbol", symbol)
		return nil
	}

	for i := range bars {
		bars[i].Symbol = symbol
	}

	if err := u.writer.UpsertBatch(ctx, bars); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	metrics.MinuteBarsIngested.Add(float64(len(bars)))
	slog.Info("ingested minute bars", "symbol", symbol, "count", len(bars))
	return nil
}
