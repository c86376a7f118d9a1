// Package usecase assembles research packets from the chart service and the
// optional collectors.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	chartentity "chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/packet/domain/entity"
)

// ChartSource provides the hourly session chart for a symbol.
type ChartSource interface {
	GetHourlyChart(ctx context.Context, symbol string, windowDays int) (chartentity.PriceChart, error)
}

// NewsCollector gathers recent headlines for a symbol.
type NewsCollector interface {
	CollectNews(ctx context.Context, symbol string) ([]entity.NewsItem, error)
}

// SenateCollector gathers disclosed congressional trades of a symbol.
type SenateCollector interface {
	CollectSenateEvents(ctx context.Context, symbol string) ([]entity.SenateEvent, error)
}

// FinanceCollector gathers a fundamentals snapshot for a symbol.
type FinanceCollector interface {
	CollectFinanceSnapshot(ctx context.Context, symbol string) (*entity.FinanceSnapshot, error)
}

// Sections selects which optional packet sections to collect. The chart is
// always included.
type Sections struct {
	News    bool
	Senate  bool
	Finance bool
}

// AllSections enables every optional section.
func AllSections() Sections {
	return Sections{News: true, Senate: true, Finance: true}
}

// PacketUsecase builds packets. A failing collector degrades its section to
// empty instead of failing the packet; only a chart failure is fatal, since
// a packet without its chart is useless.
type PacketUsecase struct {
	charts  ChartSource
	news    NewsCollector
	senate  SenateCollector
	finance FinanceCollector
}

func NewPacketUsecase(charts ChartSource, news NewsCollector, senate SenateCollector, finance FinanceCollector) *PacketUsecase {
	return &PacketUsecase{charts: charts, news: news, senate: senate, finance: finance}
}

// BuildPacket assembles a packet for the symbol over the last windowDays
// trading days, collecting only the requested sections.
func (u *PacketUsecase) BuildPacket(ctx context.Context, symbol string, windowDays int, sections Sections) (entity.Packet, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	chart, err := u.charts.GetHourlyChart(ctx, symbol, windowDays)
	if err != nil {
		return entity.Packet{}, fmt.Errorf("failed to build chart for %s: %w", symbol, err)
	}

	p := entity.Packet{
		Symbol:     symbol,
		WindowDays: windowDays,
		Chart:      chart,
	}

	if sections.News && u.news != nil {
		items, err := u.news.CollectNews(ctx, symbol)
		if err != nil {
			slog.Warn("news collection failed, section degraded", "symbol", symbol, "error", err)
		} else {
			p.News = items
		}
	}

	if sections.Senate && u.senate != nil {
		events, err := u.senate.CollectSenateEvents(ctx, symbol)
		if err != nil {
			slog.Warn("senate collection failed, section degraded", "symbol", symbol, "error", err)
		} else {
			p.Senate = events
		}
	}

	if sections.Finance && u.finance != nil {
		snap, err := u.finance.CollectFinanceSnapshot(ctx, symbol)
		if err != nil {
			slog.Warn("finance collection failed, section degraded", "symbol", symbol, "error", err)
		} else {
			p.Finance = snap
		}
	}

	return p, nil
}
