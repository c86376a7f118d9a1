// Package di provides dependency injection factories for creating application components.
package di

import (
	"chart_backend/internal/feature/chart/adapters/yahoochart"
	"chart_backend/internal/feature/chart/usecase"
	infrahttp "chart_backend/internal/platform/http"
)

// NewMarket creates a fully configured chart API client with HTTP client.
func NewMarket() usecase.MarketRepository {
	cfg := yahoochart.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoochart.NewYahooChartMarket(cfg, httpClient)
}
