// Package resample converts minute OHLCV bars into hourly bars bounded to
// the US regular trading session (09:30-16:00 America/New_York).
//
// The resampler is a pure function over its input: it holds no state between
// calls and never returns an error. Observations it cannot place (zero
// timestamps, minutes outside the session) are dropped instead of aborting
// the whole chart.
package resample

import (
	"time"
	_ "time/tzdata" // session math must not depend on the host tz database
)

// exchangeTZName is the exchange-local timezone that all session and
// trading-day boundaries are evaluated in.
const exchangeTZName = "America/New_York"

var exchangeTZ = func() *time.Location {
	loc, err := time.LoadLocation(exchangeTZName)
	if err != nil {
		// Never hit with time/tzdata linked in.
		return time.UTC
	}
	return loc
}()

// toExchangeLocal is the single conversion point from an absolute instant
// to exchange-local wall-clock time. Bucketing and day grouping go through
// here so the timezone handling stays in one place.
func toExchangeLocal(t time.Time) time.Time {
	return t.In(exchangeTZ)
}
