package resample

import "time"

const (
	sessionOpenHour   = 9
	sessionOpenMinute = 30
	sessionCloseHour  = 16
	bucketMinutes     = 60
)

// inRegularSession reports whether the local wall-clock time lies inside the
// regular session [09:30:00, 16:00:00). 09:30:00 sharp is in, 16:00:00 sharp
// is out.
func inRegularSession(local time.Time) bool {
	h, m := local.Hour(), local.Minute()
	if h < sessionOpenHour || (h == sessionOpenHour && m < sessionOpenMinute) {
		return false
	}
	return h < sessionCloseHour
}

// bucketIndex returns the index of the 60-minute bucket containing local,
// counted from session open: 0 covers [09:30,10:30), 1 covers [10:30,11:30),
// and so on. Index 6 covers the [15:30,16:00) tail.
func bucketIndex(local time.Time) int {
	offset := (local.Hour()-sessionOpenHour)*60 + (local.Minute() - sessionOpenMinute)
	return floorDiv(offset, bucketMinutes)
}

// bucketStartTime reconstructs the exchange-local start instant of the
// bucket containing local. time.Date normalizes wall times that are
// ambiguous or nonexistent around DST transitions, so the result is always
// a usable instant.
func bucketStartTime(local time.Time) time.Time {
	startMinute := sessionOpenHour*60 + sessionOpenMinute + bucketIndex(local)*bucketMinutes
	return time.Date(local.Year(), local.Month(), local.Day(),
		startMinute/60, startMinute%60, 0, 0, exchangeTZ)
}

// floorDiv divides rounding toward negative infinity, unlike Go's built-in
// truncating division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
