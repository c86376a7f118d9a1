// Package handler provides the HTTP handlers of the packet feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"chart_backend/internal/api"
	chartusecase "chart_backend/internal/feature/chart/usecase"
	"chart_backend/internal/feature/packet/domain/entity"
	"chart_backend/internal/feature/packet/render"
	"chart_backend/internal/feature/packet/usecase"
	"chart_backend/internal/platform/metrics"

	"github.com/gin-gonic/gin"
)

// PacketUsecase is the usecase interface consumed by this handler.
type PacketUsecase interface {
	BuildPacket(ctx context.Context, symbol string, windowDays int, sections usecase.Sections) (entity.Packet, error)
}

// PacketHandler serves rendered research packets.
type PacketHandler struct {
	uc PacketUsecase
}

func NewPacketHandler(uc PacketUsecase) *PacketHandler {
	return &PacketHandler{uc: uc}
}

// GetPacketHandler builds a packet and streams it as plain text.
//
// Endpoint:
// GET /packets/:symbol?window_days=7&news=true&senate=true&finance=true
func (h *PacketHandler) GetPacketHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	windowStr := c.DefaultQuery("window_days", strconv.Itoa(chartusecase.DefaultWindowDays))
	windowDays, _ := strconv.Atoi(windowStr)

	sections := usecase.Sections{
		News:    boolQuery(c, "news", true),
		Senate:  boolQuery(c, "senate", true),
		Finance: boolQuery(c, "finance", true),
	}

	p, err := h.uc.BuildPacket(c.Request.Context(), symbol, windowDays, sections)
	if err != nil {
		metrics.PacketRequests.WithLabelValues(metrics.StatusError).Inc()
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	metrics.PacketRequests.WithLabelValues(metrics.StatusOK).Inc()

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)
	if err := render.WritePacket(c.Writer, p); err != nil {
		// Headers are already out; the broken stream is all we can report.
		_ = c.Error(err)
	}
}

// boolQuery reads a boolean query parameter, falling back to def when the
// parameter is absent or not parseable.
func boolQuery(c *gin.Context, key string, def bool) bool {
	v, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
