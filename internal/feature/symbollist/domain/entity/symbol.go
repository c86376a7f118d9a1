// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is one tracked ticker symbol. Ingest runs and the public symbol
// listing both draw from this set.
type Symbol struct {
	Code      string
	Name      string
	IsActive  bool
	SortKey   int
	UpdatedAt time.Time
}
