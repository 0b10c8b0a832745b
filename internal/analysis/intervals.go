package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"steplab/domain/activity"
)

// IntervalMeans partitions observations by slot code and averages the present
// step counts across days, ascending by slot. Missing values are excluded from
// the mean, never substituted with zero. A slot where no day contributed a
// value keeps a nil mean rather than crashing or reporting zero.
func IntervalMeans(obs []activity.Observation) []activity.IntervalMean {
	present := make(map[activity.Interval][]float64)
	seen := make(map[activity.Interval]bool)
	for _, o := range obs {
		seen[o.Interval] = true
		if !o.Missing() {
			present[o.Interval] = append(present[o.Interval], float64(*o.Steps))
		}
	}

	slots := make([]activity.Interval, 0, len(seen))
	for s := range seen {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	out := make([]activity.IntervalMean, 0, len(slots))
	for _, s := range slots {
		m := activity.IntervalMean{Interval: s, N: len(present[s])}
		if mean, err := stats.Mean(present[s]); err == nil {
			m.Mean = &mean
		}
		out = append(out, m)
	}
	return out
}

// PeakInterval returns the slot with the highest defined mean. The boolean is
// false when no slot has a defined mean.
func PeakInterval(means []activity.IntervalMean) (activity.Interval, float64, bool) {
	var (
		peak  activity.Interval
		best  float64
		found bool
	)
	for _, m := range means {
		if !m.Defined() {
			continue
		}
		if !found || *m.Mean > best {
			peak, best, found = m.Interval, *m.Mean, true
		}
	}
	return peak, best, found
}
