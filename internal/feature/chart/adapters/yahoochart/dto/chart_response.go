// Package dto mirrors the Yahoo Finance v8 chart API response shape.
package dto

// ChartResponse is the top-level envelope of /v8/finance/chart/{symbol}.
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

type Chart struct {
	Result []Result  `json:"result"`
	Error  *APIError `json:"error"`
}

// APIError is populated instead of Result when the API rejects a request.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Result struct {
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote carries parallel arrays aligned with Result.Timestamp. Entries are
// pointers because the API emits null for minutes without trades.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
