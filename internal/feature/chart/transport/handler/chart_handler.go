// Package handler provides the HTTP handlers of the chart feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"chart_backend/internal/api"
	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/usecase"
	"chart_backend/internal/platform/metrics"

	"github.com/gin-gonic/gin"
)

// ChartUsecase is the usecase interface consumed by this handler.
// Following Go convention the interface lives on the consumer side.
type ChartUsecase interface {
	GetHourlyChart(ctx context.Context, symbol string, windowDays int) (entity.PriceChart, error)
}

// ChartHandler serves hourly chart requests.
type ChartHandler struct {
	uc ChartUsecase
}

func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetChartHandler returns the hourly session chart for a symbol as JSON.
//
// Endpoint:
// GET /charts/:symbol?window_days=7
func (h *ChartHandler) GetChartHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	windowStr := c.DefaultQuery("window_days", strconv.Itoa(usecase.DefaultWindowDays))
	// A non-numeric value parses to 0, which the resampler treats as an
	// empty chart rather than an error.
	windowDays, _ := strconv.Atoi(windowStr)

	chart, err := h.uc.GetHourlyChart(c.Request.Context(), symbol, windowDays)
	if err != nil {
		metrics.ChartRequests.WithLabelValues(metrics.StatusError).Inc()
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	metrics.ChartRequests.WithLabelValues(metrics.StatusOK).Inc()

	bars := make([]api.HourBarResponse, 0, len(chart.Bars))
	for _, b := range chart.Bars {
		bars = append(bars, api.HourBarResponse{
			BucketStart: b.BucketStart.Format(time.RFC3339),
			Open:        b.Open,
			High:        b.High,
			Low:         b.Low,
			Close:       b.Close,
			Volume:      b.Volume,
		})
	}

	c.JSON(http.StatusOK, api.ChartResponse{
		Symbol:     chart.Symbol,
		WindowDays: chart.WindowDays,
		Bars:       bars,
	})
}
