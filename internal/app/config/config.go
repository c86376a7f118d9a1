// Package config loads process configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int `envconfig:"PORT" default:"8080"`
}

// DBConfig holds database connection details. The sqlite default keeps
// local development free of external services.
type DBConfig struct {
	Driver        string `envconfig:"DB_DRIVER" default:"sqlite"`
	DSN           string `envconfig:"DB_DSN" default:"charts.db"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"`
}

// IngestConfig holds the settings of an ingest run.
type IngestConfig struct {
	Symbols        string        `envconfig:"SYMBOLS"`
	RequestsPerMin int           `envconfig:"MARKET_REQUESTS_PER_MIN" default:"5"`
	Timeout        time.Duration `envconfig:"INGEST_TIMEOUT" default:"5m"`
}

// SymbolList splits the comma-separated SYMBOLS value. An empty value
// returns nil, which callers treat as "use the symbol table".
func (c IngestConfig) SymbolList() []string {
	parts := strings.Split(c.Symbols, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Load fills the given struct from environment.
func Load[T any](prefix string) (T, error) {
	var cfg T
	err := envconfig.Process(prefix, &cfg)
	return cfg, err
}
