package ports

import "steplab/domain/activity"

// PlotRenderer draws the report figures from finished tables. Renderers are
// pure consumers: they never feed back into the pipeline.
type PlotRenderer interface {
	// DailyTotalsHistogram draws the distribution of defined daily totals.
	DailyTotalsHistogram(title string, totals []float64, path string) error

	// IntervalSeries draws the across-day average per slot as a time series,
	// marking the peak-activity slot.
	IntervalSeries(means []activity.IntervalMean, peak activity.Interval, path string) error

	// WeekpartSeries draws the weekday and weekend interval profiles together.
	WeekpartSeries(parts activity.WeekpartMeans, path string) error
}
