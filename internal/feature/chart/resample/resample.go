package resample

import (
	"sort"
	"strings"

	"chart_backend/internal/feature/chart/domain/entity"
)

// dayKeyLayout sorts lexicographically in chronological order.
const dayKeyLayout = "2006-01-02"

// barsPerFullDay is six full hours plus the half-hour tail bucket.
const barsPerFullDay = 7

// RegularSession1H folds minute bars into one-hour buckets per trading day
// and keeps only the most recent windowDays trading days present in the
// input. Days are exchange-local calendar dates, not UTC dates.
//
// Close prices are last-write-wins: minutes must arrive in non-decreasing
// timestamp order for a bucket's close to be its latest trade. Buckets that
// received no minutes are absent from the output, not zero-filled. The final
// session bucket covers only [15:30,16:00) and is emitted as its own,
// shorter bar. windowDays <= 0 yields an empty chart.
func RegularSession1H(symbol string, minutes []entity.MinuteBar, windowDays int) entity.PriceChart {
	byDay := make(map[string][]entity.MinuteBar)
	for _, b := range minutes {
		if b.Time.IsZero() {
			continue
		}
		local := toExchangeLocal(b.Time)
		if !inRegularSession(local) {
			continue
		}
		key := local.Format(dayKeyLayout)
		byDay[key] = append(byDay[key], b)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	keep := windowDays
	if keep < 0 {
		keep = 0
	}
	if len(days) > keep {
		days = days[len(days)-keep:]
	}

	bars := make([]entity.HourBar, 0, len(days)*barsPerFullDay)
	for _, d := range days {
		bars = append(bars, resampleDay(byDay[d])...)
	}

	return entity.PriceChart{
		Symbol:     strings.ToUpper(symbol),
		WindowDays: windowDays,
		Bars:       bars,
	}
}

// resampleDay folds one trading day's session minutes, in arrival order,
// into sparse hourly buckets and returns them sorted by bucket start.
func resampleDay(minutes []entity.MinuteBar) []entity.HourBar {
	buckets := make(map[int64]*entity.HourBar, barsPerFullDay)
	starts := make([]int64, 0, barsPerFullDay)

	for _, b := range minutes {
		start := bucketStartTime(toExchangeLocal(b.Time))
		key := start.Unix()
		agg, ok := buckets[key]
		if !ok {
			buckets[key] = &entity.HourBar{
				BucketStart: start,
				Open:        b.Open,
				High:        b.High,
				Low:         b.Low,
				Close:       b.Close,
				Volume:      b.Volume,
			}
			starts = append(starts, key)
			continue
		}
		if b.High > agg.High {
			agg.High = b.High
		}
		if b.Low < agg.Low {
			agg.Low = b.Low
		}
		agg.Close = b.Close // last minute folded wins
		agg.Volume += b.Volume
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	out := make([]entity.HourBar, 0, len(starts))
	for _, s := range starts {
		out = append(out, *buckets[s])
	}
	return out
}
