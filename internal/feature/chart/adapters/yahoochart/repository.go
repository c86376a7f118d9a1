package yahoochart

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"chart_backend/internal/feature/chart/adapters/yahoochart/dto"
	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/usecase"
)

// YahooChartMarket fetches minute bars from the Yahoo Finance chart API,
// trying each configured mirror in turn.
type YahooChartMarket struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketRepository = (*YahooChartMarket)(nil)

func NewYahooChartMarket(cfg Config, client *http.Client) *YahooChartMarket {
	return &YahooChartMarket{cfg: cfg, client: client}
}

// GetMinuteBars requests 1m candles for the configured range. Rows where any
// OHLCV field is null are dropped; timestamps come back as Unix seconds and
// are stored as UTC instants.
func (y *YahooChartMarket) GetMinuteBars(ctx context.Context, symbol string) ([]entity.MinuteBar, error) {
	var lastErr error
	for i, base := range y.cfg.BaseURLs {
		if i > 0 && y.cfg.MirrorDelay > 0 {
			timer := time.NewTimer(y.cfg.MirrorDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		bars, err := y.fetchFrom(ctx, base, symbol)
		if err == nil {
			return bars, nil
		}
		slog.Warn("chart mirror failed", "base", base, "symbol", symbol, "error", err)
		lastErr = err
	}
	return nil, fmt.Errorf("all chart mirrors failed for %s: %w", symbol, lastErr)
}

func (y *YahooChartMarket) fetchFrom(ctx context.Context, base, symbol string) ([]entity.MinuteBar, error) {
	q := url.Values{}
	q.Set("interval", "1m")
	q.Set("range", y.cfg.Range)

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", base, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("chart api http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("chart api: %s: %s", body.Chart.Error.Code, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart api: empty result for %s", symbol)
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]entity.MinuteBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) ||
			i >= len(quote.Close) || i >= len(quote.Volume) {
			break
		}
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil ||
			quote.Close[i] == nil || quote.Volume[i] == nil {
			continue
		}
		bars = append(bars, entity.MinuteBar{
			Symbol: symbol,
			Time:   time.Unix(ts, 0).UTC(),
			Open:   *quote.Open[i],
			High:   *quote.High[i],
			Low:    *quote.Low[i],
			Close:  *quote.Close[i],
			Volume: *quote.Volume[i],
		})
	}
	return bars, nil
}
