// Package entity defines the domain models for the chart feature.
package entity

import "time"

// MinuteBar represents one minute-granularity OHLCV observation for a stock
// symbol. Time is the absolute instant of the observation; session and
// trading-day classification always happen in the exchange timezone, never
// in UTC or the host timezone.
type MinuteBar struct {
	Symbol string    // Stock ticker symbol (e.g., "AAPL")
	Time   time.Time // Absolute instant of the observation (stored in UTC)
	Open   float64   // Opening price
	High   float64   // Highest price during this minute
	Low    float64   // Lowest price during this minute
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// HourBar is one aggregated hourly bar of a regular trading session.
// BucketStart carries the exchange-local zone so rendering keeps the
// local UTC offset.
type HourBar struct {
	BucketStart time.Time // First instant of the bucket, exchange-local
	Open        float64   // Open of the first minute folded into the bucket
	High        float64   // Maximum high across folded minutes
	Low         float64   // Minimum low across folded minutes
	Close       float64   // Close of the last minute folded into the bucket
	Volume      int64     // Sum of folded minute volumes
}

// PriceChart is the hourly chart for one symbol over the last WindowDays
// trading days. Bars are strictly increasing in BucketStart, with no
// duplicate bucket per day and no cross-day interleaving.
type PriceChart struct {
	Symbol     string    // Upper-cased ticker symbol
	WindowDays int       // Requested trading-day window
	Bars       []HourBar // Chronologically ordered hourly bars
}
