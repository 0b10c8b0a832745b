package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"steplab/domain/activity"
	"steplab/domain/core"
)

// Impute produces a completed copy of the observation table: every missing
// step count is replaced by the across-day mean of its slot, joined on the
// interval code. The join is explicit — positional alignment between a day's
// rows and the mean table is never assumed, so a day with reordered or
// partially missing slots still imputes correctly. Imputed values keep full
// fractional precision even though measured counts are integral.
//
// Needing a mean that is undefined breaks the invariant that every slot has
// at least one measured day; that halts the run instead of producing a
// silently corrupted report.
func Impute(obs []activity.Observation, means []activity.IntervalMean) ([]activity.ImputedObservation, error) {
	lookup := make(map[activity.Interval]float64, len(means))
	for _, m := range means {
		if m.Defined() {
			lookup[m.Interval] = *m.Mean
		}
	}

	out := make([]activity.ImputedObservation, 0, len(obs))
	for _, o := range obs {
		im := activity.ImputedObservation{
			Date:     o.Date,
			Interval: o.Interval,
			DayKind:  activity.DayKindOf(o.Date),
		}
		if o.Missing() {
			mean, ok := lookup[o.Interval]
			if !ok {
				return nil, fmt.Errorf("%w for slot %s: cannot impute %s",
					core.ErrUndefinedMean, o.Interval.Clock(), o.Date.Format(activity.DateLayout))
			}
			im.Steps = mean
			im.Imputed = true
		} else {
			im.Steps = float64(*o.Steps)
		}
		out = append(out, im)
	}
	return out, nil
}

// ImputedDailyTotals re-aggregates daily totals on the completed dataset,
// ascending by date. Post-imputation no value is missing, so every date has
// a defined sum.
func ImputedDailyTotals(imputed []activity.ImputedObservation) []activity.ImputedDailyTotal {
	byDate := make(map[time.Time]float64)
	for _, o := range imputed {
		byDate[o.Date] += o.Steps
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]activity.ImputedDailyTotal, 0, len(dates))
	for _, d := range dates {
		out = append(out, activity.ImputedDailyTotal{Date: d, Steps: byDate[d]})
	}
	return out
}

// WeekpartMeans partitions the completed dataset by (day kind, slot) and
// averages each group, ascending by slot within each series.
func WeekpartMeans(imputed []activity.ImputedObservation) activity.WeekpartMeans {
	return activity.WeekpartMeans{
		Weekday: weekpartSeries(imputed, activity.Weekday),
		Weekend: weekpartSeries(imputed, activity.Weekend),
	}
}

func weekpartSeries(imputed []activity.ImputedObservation, kind activity.DayKind) []activity.IntervalMean {
	values := make(map[activity.Interval][]float64)
	for _, o := range imputed {
		if o.DayKind == kind {
			values[o.Interval] = append(values[o.Interval], o.Steps)
		}
	}

	slots := make([]activity.Interval, 0, len(values))
	for s := range values {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	out := make([]activity.IntervalMean, 0, len(slots))
	for _, s := range slots {
		m := activity.IntervalMean{Interval: s, N: len(values[s])}
		if mean, err := stats.Mean(values[s]); err == nil {
			m.Mean = &mean
		}
		out = append(out, m)
	}
	return out
}
