package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/usecase"
)

var ErrFetch = errors.New("fetch failed")

type mockMarketRepository struct {
	GetMinuteBarsFunc func(ctx context.Context, symbol string) ([]entity.MinuteBar, error)
	Calls             []string
}

func (m *mockMarketRepository) GetMinuteBars(ctx context.Context, symbol string) ([]entity.MinuteBar, error) {
	m.Calls = append(m.Calls, symbol)
	if m.GetMinuteBarsFunc != nil {
		return m.GetMinuteBarsFunc(ctx, symbol)
	}
	return nil, errors.New("GetMinuteBarsFunc is not implemented")
}

type mockMinuteBarWriter struct {
	UpsertBatchFunc func(ctx context.Context, bars []entity.MinuteBar) error
	Upserted        [][]entity.MinuteBar
}

func (m *mockMinuteBarWriter) UpsertBatch(ctx context.Context, bars []entity.MinuteBar) error {
	m.Upserted = append(m.Upserted, bars)
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, bars)
	}
	return nil
}

// noWait satisfies RateWaiter without sleeping.
type noWait struct {
	Calls int
}

func (n *noWait) Wait(ctx context.Context) error {
	n.Calls++
	return ctx.Err()
}

func someBars(n int) []entity.MinuteBar {
	bars := make([]entity.MinuteBar, n)
	base := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = entity.MinuteBar{Time: base.Add(time.Duration(i) * time.Minute), Open: 1, High: 1, Low: 1, Close: 1, Volume: 1}
	}
	return bars
}

func TestIngestUsecase_IngestSymbols(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stamps symbol and upserts", func(t *testing.T) {
		market := &mockMarketRepository{
			GetMinuteBarsFunc: func(ctx context.Context, symbol string) ([]entity.MinuteBar, error) {
				return someBars(3), nil
			},
		}
		writer := &mockMinuteBarWriter{}
		limiter := &noWait{}
		uc := usecase.NewIngestUsecase(market, writer, limiter)

		err := uc.IngestSymbols(ctx, []string{"aapl", " msft "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(market.Calls) != 2 || market.Calls[0] != "AAPL" || market.Calls[1] != "MSFT" {
			t.Errorf("market calls = %v, want [AAPL MSFT]", market.Calls)
		}
		if len(writer.Upserted) != 2 {
			t.Fatalf("upsert batches = %d, want 2", len(writer.Upserted))
		}
		for _, bar := range writer.Upserted[0] {
			if bar.Symbol != "AAPL" {
				t.Errorf("bar symbol = %q, want AAPL", bar.Symbol)
			}
		}
		if limiter.Calls != 2 {
			t.Errorf("limiter waited %d times, want 2", limiter.Calls)
		}
	})

	t.Run("partial failure: bad symbol is skipped, run continues", func(t *testing.T) {
		market := &mockMarketRepository{
			GetMinuteBarsFunc: func(ctx context.Context, symbol string) ([]entity.MinuteBar, error) {
				if symbol == "BAD" {
					return nil, ErrFetch
				}
				return someBars(1), nil
			},
		}
		writer := &mockMinuteBarWriter{}
		uc := usecase.NewIngestUsecase(market, writer, &noWait{})

		err := uc.IngestSymbols(ctx, []string{"BAD", "AAPL"})
		if err != nil {
			t.Fatalf("partial failure should not error: %v", err)
		}
		if len(writer.Upserted) != 1 {
			t.Errorf("upsert batches = %d, want 1", len(writer.Upserted))
		}
	})

	t.Run("error: all symbols failed", func(t *testing.T) {
		market := &mockMarketRepository{
			GetMinuteBarsFunc: func(ctx context.Context, symbol string) ([]entity.MinuteBar, error) {
				return nil, ErrFetch
			},
		}
		uc := usecase.NewIngestUsecase(market, &mockMinuteBarWriter{}, &noWait{})

		if err := uc.IngestSymbols(ctx, []string{"A", "B"}); err == nil {
			t.Fatal("expected error when every symbol fails")
		}
	})

	t.Run("success: empty fetch result is not persisted", func(t *testing.T) {
		market := &mockMarketRepository{
			GetMinuteBarsFunc: func(ctx context.Context, symbol string) ([]entity.MinuteBar, error) {
				return nil, nil
			},
		}
		writer := &mockMinuteBarWriter{}
		uc := usecase.NewIngestUsecase(market, writer, &noWait{})

		if err := uc.IngestSymbols(ctx, []string{"AAPL"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(writer.Upserted) != 0 {
			t.Errorf("upsert batches = %d, want 0", len(writer.Upserted))
		}
	})

	t.Run("success: no symbols is a no-op", func(t *testing.T) {
		market := &mockMarketRepository{}
		uc := usecase.NewIngestUsecase(market, &mockMinuteBarWriter{}, &noWait{})

		if err := uc.IngestSymbols(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(market.Calls) != 0 {
			t.Errorf("market calls = %v, want none", market.Calls)
		}
	})

	t.Run("error: cancelled context stops the run", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		market := &mockMarketRepository{}
		uc := usecase.NewIngestUsecase(market, &mockMinuteBarWriter{}, &noWait{})

		if err := uc.IngestSymbols(cancelled, []string{"AAPL"}); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
