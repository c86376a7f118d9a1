package router

import (
	charthandler "chart_backend/internal/feature/chart/transport/handler"
	packethandler "chart_backend/internal/feature/packet/transport/handler"
	symbolhandler "chart_backend/internal/feature/symbollist/transport/handler"
	"chart_backend/internal/platform/http/handler"
	jwtmw "chart_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(charts *charthandler.ChartHandler, packets *packethandler.PacketHandler,
	symbols *symbolhandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Routes requiring a bearer token
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/charts/:symbol", charts.GetChartHandler)
		auth.GET("/packets/:symbol", packets.GetPacketHandler)
		auth.GET("/symbols", symbols.List)
	}

	return r
}
