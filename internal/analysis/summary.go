package analysis

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"steplab/domain/activity"
	"steplab/domain/core"
)

// Summarize computes the scalar statistics the narrative quotes. It reads
// only finished tables from earlier stages and never mutates them.
func Summarize(
	obs []activity.Observation,
	daily []activity.DailyTotal,
	means []activity.IntervalMean,
	imputedDaily []activity.ImputedDailyTotal,
	parts activity.WeekpartMeans,
) (activity.Summary, error) {
	if len(obs) == 0 {
		return activity.Summary{}, core.ErrEmptyDataset
	}

	s := activity.Summary{
		Rows: len(obs),
		Days: len(daily),
	}
	for _, d := range daily {
		s.MissingObservations += d.Missing
		if d.Missing == activity.SlotsPerDay {
			s.MissingDays++
		}
	}
	s.MissingRate = float64(s.MissingObservations) / float64(len(obs))

	defined := DefinedTotals(daily)
	rawMean, err := stats.Mean(defined)
	if err != nil {
		return activity.Summary{}, core.NewDataIntegrityError("no complete day to summarize")
	}
	rawMedian, err := stats.Median(defined)
	if err != nil {
		return activity.Summary{}, core.NewDataIntegrityError("no complete day to summarize")
	}
	s.RawMeanDaily = rawMean
	s.RawMedianDaily = rawMedian

	imputedTotals := make([]float64, 0, len(imputedDaily))
	for _, d := range imputedDaily {
		imputedTotals = append(imputedTotals, d.Steps)
	}
	impMean, err := stats.Mean(imputedTotals)
	if err != nil {
		return activity.Summary{}, core.NewDataIntegrityError("imputed dataset is empty")
	}
	impMedian, err := stats.Median(imputedTotals)
	if err != nil {
		return activity.Summary{}, core.NewDataIntegrityError("imputed dataset is empty")
	}
	s.ImputedMeanDaily = impMean
	s.ImputedMedianDaily = impMedian

	peak, peakMean, ok := PeakInterval(means)
	if !ok {
		return activity.Summary{}, core.NewDataIntegrityError("no interval has a defined mean")
	}
	s.PeakInterval = peak
	s.PeakMean = peakMean

	corr, err := weekpartCorrelation(parts)
	if err != nil {
		return activity.Summary{}, err
	}
	s.WeekpartCorrelation = corr

	return s, nil
}

// weekpartCorrelation measures how similar the weekday and weekend interval
// profiles are. Both series must cover the same slots in the same order.
func weekpartCorrelation(parts activity.WeekpartMeans) (float64, error) {
	if len(parts.Weekday) != len(parts.Weekend) {
		return 0, core.NewDataIntegrityError("weekday and weekend series cover different slot sets")
	}
	x := make([]float64, 0, len(parts.Weekday))
	y := make([]float64, 0, len(parts.Weekend))
	for i := range parts.Weekday {
		if parts.Weekday[i].Interval != parts.Weekend[i].Interval {
			return 0, core.NewDataIntegrityError("weekday and weekend series are misaligned")
		}
		if !parts.Weekday[i].Defined() || !parts.Weekend[i].Defined() {
			continue
		}
		x = append(x, *parts.Weekday[i].Mean)
		y = append(y, *parts.Weekend[i].Mean)
	}
	if len(x) < 2 {
		return 0, core.NewDataIntegrityError("not enough defined slots for weekpart correlation")
	}
	return stat.Correlation(x, y, nil), nil
}
