// Command packet builds a research packet from a minute-bar CSV file and
// writes it to stdout. It runs fully offline, which makes it handy for
// inspecting the renderer output and for batch jobs that feed downstream
// models from archived data.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"chart_backend/internal/feature/chart/adapters/csvfile"
	chartentity "chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/resample"
	packetadapters "chart_backend/internal/feature/packet/adapters"
	"chart_backend/internal/feature/packet/render"
	packetusecase "chart_backend/internal/feature/packet/usecase"
)

// fileChartSource resamples a CSV minute history on demand.
type fileChartSource struct {
	path string
}

func (s fileChartSource) GetHourlyChart(ctx context.Context, symbol string, windowDays int) (chartentity.PriceChart, error) {
	minutes, err := csvfile.ReadMinuteBars(s.path, symbol)
	if err != nil {
		return chartentity.PriceChart{}, err
	}
	return resample.RegularSession1H(symbol, minutes, windowDays), nil
}

func main() {
	ticker := flag.String("ticker", "", "symbol to build the packet for (required)")
	sourcePath := flag.String("source-path", "", "minute-bar CSV file (default: look up <TICKER>.csv)")
	windowDays := flag.Int("window-days", 7, "trading-day window")
	noNews := flag.Bool("no-news", false, "skip the news section")
	noSenate := flag.Bool("no-senate", false, "skip the senate activity section")
	noFinance := flag.Bool("no-finance", false, "skip the finance snapshot section")
	flag.Parse()

	if *ticker == "" {
		flag.Usage()
		os.Exit(2)
	}

	path := *sourcePath
	if path == "" {
		path = csvfile.DefaultPath(*ticker)
	}

	collectors := packetadapters.NullCollectors{}
	uc := packetusecase.NewPacketUsecase(fileChartSource{path: path}, collectors, collectors, collectors)

	sections := packetusecase.Sections{
		News:    !*noNews,
		Senate:  !*noSenate,
		Finance: !*noFinance,
	}

	p, err := uc.BuildPacket(context.Background(), *ticker, *windowDays, sections)
	if err != nil {
		log.Fatal(err)
	}

	if err := render.WritePacket(os.Stdout, p); err != nil {
		log.Fatal(err)
	}
}
