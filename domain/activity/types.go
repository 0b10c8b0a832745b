package activity

import "time"

// DateLayout is the required format of the date column.
const DateLayout = "2006-01-02"

// Observation is one measured 5-minute slot. Steps is nil when the device
// recorded no value for the slot.
type Observation struct {
	Steps    *int      `json:"steps"`
	Date     time.Time `json:"date"`
	Interval Interval  `json:"interval"`
}

// Missing reports whether the observation carries no step count.
func (o Observation) Missing() bool {
	return o.Steps == nil
}

// DailyTotal is the summed step count for one date. Steps is nil when any
// slot of the day was missing: a partial sum would mask recording gaps the
// narrative needs to call out.
type DailyTotal struct {
	Date    time.Time `json:"date"`
	Steps   *int      `json:"steps"`
	Missing int       `json:"missing"` // missing observations on this date
}

// ImputedDailyTotal is a daily total recomputed on the completed dataset.
// Every date has a defined value, fractional because imputed slots carry
// interval means at full precision.
type ImputedDailyTotal struct {
	Date  time.Time `json:"date"`
	Steps float64   `json:"steps"`
}

// IntervalMean is the across-day average for one slot, computed over
// present values only. Mean is nil when no day contributed a value.
type IntervalMean struct {
	Interval Interval `json:"interval"`
	Mean     *float64 `json:"mean"`
	N        int      `json:"n"` // present observations behind the mean
}

// Defined reports whether the slot had at least one present value.
func (m IntervalMean) Defined() bool {
	return m.Mean != nil
}

// ImputedObservation mirrors Observation with every gap filled from the
// matching interval mean. Original integer counts and fractional imputed
// values share one float field on purpose.
type ImputedObservation struct {
	Steps    float64   `json:"steps"`
	Date     time.Time `json:"date"`
	Interval Interval  `json:"interval"`
	DayKind  DayKind   `json:"day_kind"`
	Imputed  bool      `json:"imputed"`
}
