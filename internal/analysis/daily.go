package analysis

import (
	"sort"
	"time"

	"steplab/domain/activity"
)

// DailyTotals partitions observations by date and sums step counts, ascending
// by date. A date with any missing slot yields a nil total: partial sums would
// hide the whole-day recording gaps the report exists to surface. The per-day
// missing count rides along so incomplete days are identified, not discarded.
func DailyTotals(obs []activity.Observation) []activity.DailyTotal {
	type acc struct {
		sum     int
		missing int
	}
	byDate := make(map[time.Time]*acc)
	for _, o := range obs {
		a := byDate[o.Date]
		if a == nil {
			a = &acc{}
			byDate[o.Date] = a
		}
		if o.Missing() {
			a.missing++
		} else {
			a.sum += *o.Steps
		}
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]activity.DailyTotal, 0, len(dates))
	for _, d := range dates {
		a := byDate[d]
		total := activity.DailyTotal{Date: d, Missing: a.missing}
		if a.missing == 0 {
			sum := a.sum
			total.Steps = &sum
		}
		out = append(out, total)
	}
	return out
}

// DefinedTotals extracts the defined daily sums as floats, in date order.
func DefinedTotals(daily []activity.DailyTotal) []float64 {
	out := make([]float64, 0, len(daily))
	for _, d := range daily {
		if d.Steps != nil {
			out = append(out, float64(*d.Steps))
		}
	}
	return out
}
