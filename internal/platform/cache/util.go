package cache

import (
	"time"
	_ "time/tzdata"
)

// TimeUntilNextSessionOpen returns the duration until the next 09:30 in
// America/New_York, a natural expiry for entries that should not outlive
// the next trading session's open.
func TimeUntilNextSessionOpen() time.Duration {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Now().In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), 9, 30, 0, 0, loc)
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
