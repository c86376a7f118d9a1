// Package api defines the JSON response shapes shared across handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HourBarResponse is one hourly bar in a chart response. BucketStart is
// formatted as RFC 3339 in the exchange's local offset.
type HourBarResponse struct {
	BucketStart string  `json:"bucket_start"`
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Volume      int64   `json:"volume"`
}

// ChartResponse is the hourly chart for one symbol.
type ChartResponse struct {
	Symbol     string            `json:"symbol"`
	WindowDays int               `json:"window_days"`
	Bars       []HourBarResponse `json:"bars"`
}
