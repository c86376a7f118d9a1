// Package yahoochart provides a client for the Yahoo Finance v8 chart API.
package yahoochart

import (
	"os"
	"strings"
	"time"
)

// Config holds configuration for the Yahoo chart API client.
type Config struct {
	BaseURLs    []string      // Mirror hosts tried in order until one succeeds
	Range       string        // Lookback range requested from the API (e.g., "5d")
	UserAgent   string        // Sent with every request; the API rejects blank agents
	MirrorDelay time.Duration // Pause before falling over to the next mirror
	Timeout     time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo chart configuration from environment variables,
// falling back to the public query1/query2 mirrors.
func LoadConfig() Config {
	cfg := Config{
		BaseURLs: []string{
			"https://query1.finance.yahoo.com",
			"https://query2.finance.yahoo.com",
		},
		Range:       "5d",
		UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		MirrorDelay: time.Second,
		Timeout:     10 * time.Second,
	}
	if v := os.Getenv("CHART_API_BASE_URLS"); v != "" {
		cfg.BaseURLs = cfg.BaseURLs[:0]
		for _, u := range strings.Split(v, ",") {
			if u = strings.TrimSpace(u); u != "" {
				cfg.BaseURLs = append(cfg.BaseURLs, u)
			}
		}
	}
	if v := os.Getenv("CHART_API_RANGE"); v != "" {
		cfg.Range = v
	}
	return cfg
}
