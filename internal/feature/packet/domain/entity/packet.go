// Package entity defines the domain models for the research packet feature.
package entity

import (
	"time"

	chartentity "chart_backend/internal/feature/chart/domain/entity"
)

// NewsItem is one headline relevant to the packet's symbol.
type NewsItem struct {
	PublishedAt time.Time
	Source      string
	Headline    string
	URL         string
}

// SenateEvent is one disclosed congressional trading activity involving the
// symbol.
type SenateEvent struct {
	Date         string // YYYY-MM-DD as disclosed
	Chamber      string // "Senate" or "House"
	MemberName   string
	ActivityType string // BUY, SELL or DISCLOSURE
	Notes        string
}

// FinanceSnapshot carries headline fundamentals at a point in time.
// Approximate fields are pointers because providers routinely omit them for
// ETFs and foreign listings.
type FinanceSnapshot struct {
	Source          string
	AsOfUTC         time.Time
	PriceLast       float64
	MarketCapApprox *float64
	PERatioApprox   *float64
	Notes           string
}

// Packet bundles everything a reviewer needs for one symbol: the hourly
// session chart plus whichever optional sections were requested and could
// be collected.
type Packet struct {
	Symbol     string
	WindowDays int
	Chart      chartentity.PriceChart
	News       []NewsItem
	Senate     []SenateEvent
	Finance    *FinanceSnapshot
}
