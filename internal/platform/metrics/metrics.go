// Package metrics defines the Prometheus instruments shared across the
// service. Instruments register against the default registry and are served
// by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChartRequests counts served chart requests by outcome.
	ChartRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chart_requests_total",
		Help: "Chart requests served, labeled by status.",
	}, []string{"status"})

	// PacketRequests counts served packet requests by outcome.
	PacketRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "packet_requests_total",
		Help: "Packet requests served, labeled by status.",
	}, []string{"status"})

	// MinuteBarsIngested counts minute bars written by ingest runs.
	MinuteBarsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "minute_bars_ingested_total",
		Help: "Minute bars fetched from the market provider and stored.",
	})

	// CacheHits counts chart cache lookups by result.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chart_cache_lookups_total",
		Help: "Chart cache lookups, labeled hit or miss.",
	}, []string{"result"})
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	ResultHit  = "hit"
	ResultMiss = "miss"
)
