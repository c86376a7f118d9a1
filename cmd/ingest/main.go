package main

import (
	"context"
	"log"
	"time"

	"chart_backend/internal/app/config"
	"chart_backend/internal/app/di"
	chartadapters "chart_backend/internal/feature/chart/adapters"
	chartusecase "chart_backend/internal/feature/chart/usecase"
	symbollistadapters "chart_backend/internal/feature/symbollist/adapters"
	"chart_backend/internal/platform/db"
	"chart_backend/internal/shared/ratelimiter"
)

func main() {
	ingCfg, err := config.Load[config.IngestConfig]("")
	if err != nil {
		log.Fatal("failed to load ingest config:", err)
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

	market := di.NewMarket()
	writer := chartadapters.NewMinuteBarRepository(gdb)
	limiter := ratelimiter.NewRateLimiter(ingCfg.RequestsPerMin, time.Minute)
	uc := chartusecase.NewIngestUsecase(market, writer, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), ingCfg.Timeout)
	defer cancel()

	symbols := ingCfg.SymbolList()
	if symbols == nil {
		symbolRepo := symbollistadapters.NewSymbolRepository(gdb)
		symbols, err = symbolRepo.ListActiveCodes(ctx)
		if err != nil {
			log.Fatal("failed to load symbols:", err)
		}
	}

	if err := uc.IngestSymbols(ctx, symbols); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
