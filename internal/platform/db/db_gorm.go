// Package db opens the GORM database handle used by the service.
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	chartadapters "chart_backend/internal/feature/chart/adapters"
	symboladapters "chart_backend/internal/feature/symbollist/adapters"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects the database backend. SQLite serves local development and
// the CLI tools; Postgres serves deployments.
type Config struct {
	Driver        string
	DSN           string
	RunMigrations bool
}

// Opener abstracts gorm.Open for retry testing.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps attempting to open the database until it succeeds
// or the timeout elapses. Deployments start the service and the database
// together, so the first attempts routinely race the database's startup.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Open connects per the config and optionally runs migrations. SQLite opens
// without retries since there is no server to wait for.
func Open(cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case DriverSQLite:
		db, err = gorm.Open(gsqlite.Open(cfg.DSN), &gorm.Config{})
	case DriverPostgres, "":
		db, err = ConnectWithRetry(cfg.DSN, 60*time.Second, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&chartadapters.MinuteBarModel{},
			&symboladapters.SymbolModel{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
