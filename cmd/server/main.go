package main

import (
	"fmt"
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"chart_backend/internal/app/config"
	"chart_backend/internal/app/di"
	"chart_backend/internal/app/router"
	charthandler "chart_backend/internal/feature/chart/transport/handler"
	packetadapters "chart_backend/internal/feature/packet/adapters"
	packethandler "chart_backend/internal/feature/packet/transport/handler"
	packetusecase "chart_backend/internal/feature/packet/usecase"
	symbollistadapters "chart_backend/internal/feature/symbollist/adapters"
	symbollisthandler "chart_backend/internal/feature/symbollist/transport/handler"
	symbollistusecase "chart_backend/internal/feature/symbollist/usecase"
	"chart_backend/internal/platform/db"
	infraredis "chart_backend/internal/platform/redis"
)

func main() {
	srvCfg, err := config.Load[config.ServerConfig]("")
	if err != nil {
		log.Fatal("failed to load server config:", err)
	}
	dbCfg, err := config.Load[config.DBConfig]("")
	if err != nil {
		log.Fatal("failed to load db config:", err)
	}

	gdb, err := db.Open(db.Config{
		Driver:        dbCfg.Driver,
		DSN:           dbCfg.DSN,
		RunMigrations: dbCfg.RunMigrations,
	})
	if err != nil {
		log.Fatal("failed to open database:", err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Usecase
	chartSource := di.NewChartSource(gdb, rdb)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbollistadapters.NewSymbolRepository(gdb))
	collectors := packetadapters.NullCollectors{}
	packetUC := packetusecase.NewPacketUsecase(chartSource, collectors, collectors, collectors)

	// Handler
	chartsH := charthandler.NewChartHandler(chartSource)
	packetsH := packethandler.NewPacketHandler(packetUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	router := router.NewRouter(chartsH, packetsH, symbolH)

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(fmt.Sprintf(":%d", srvCfg.Port)); err != nil {
		log.Fatal(err)
	}
}
