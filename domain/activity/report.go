package activity

// WeekpartMeans holds one interval-average series per day kind, each with
// exactly one row per canonical slot.
type WeekpartMeans struct {
	Weekday []IntervalMean `json:"weekday"`
	Weekend []IntervalMean `json:"weekend"`
}

// Summary carries the scalar statistics quoted in the report narrative.
type Summary struct {
	Rows                int     `json:"rows"`
	Days                int     `json:"days"`
	MissingObservations int     `json:"missing_observations"`
	MissingRate         float64 `json:"missing_rate"`
	MissingDays         int     `json:"missing_days"` // days with all 288 slots missing

	RawMeanDaily       float64 `json:"raw_mean_daily"`
	RawMedianDaily     float64 `json:"raw_median_daily"`
	ImputedMeanDaily   float64 `json:"imputed_mean_daily"`
	ImputedMedianDaily float64 `json:"imputed_median_daily"`

	PeakInterval Interval `json:"peak_interval"`
	PeakMean     float64  `json:"peak_mean"`

	// Pearson correlation between the weekday and weekend interval profiles.
	WeekpartCorrelation float64 `json:"weekpart_correlation"`
}

// Tables bundles every computed table the presentation layer consumes.
// The pipeline fills it once; renderers only read it.
type Tables struct {
	Daily         []DailyTotal
	IntervalMeans []IntervalMean
	Imputed       []ImputedObservation
	ImputedDaily  []ImputedDailyTotal
	Weekpart      WeekpartMeans
	Summary       Summary
}
