package activity

import "fmt"

// Interval identifies a 5-minute measurement slot by its hhmm code
// (805 means the slot starting at 08:05).
type Interval int

const (
	// SlotsPerDay is the number of 5-minute slots in one day.
	SlotsPerDay = 288

	// MaxInterval is the last canonical slot code (23:55).
	MaxInterval Interval = 2355
)

// Canonical reports whether i is one of the 288 slot codes.
func (i Interval) Canonical() bool {
	if i < 0 || i > MaxInterval {
		return false
	}
	hh, mm := int(i)/100, int(i)%100
	return hh < 24 && mm < 60 && mm%5 == 0
}

// Minutes returns the slot offset from midnight in minutes.
func (i Interval) Minutes() int {
	return (int(i)/100)*60 + int(i)%100
}

// Hours returns the slot offset from midnight in fractional hours.
// Plot axes use this instead of the raw code, which jumps by 45 at
// every hour boundary.
func (i Interval) Hours() float64 {
	return float64(i.Minutes()) / 60
}

// Clock formats i as "h:mm" with an unpadded hour. A non-canonical code
// produces a diagnostic string instead of a clock label; callers treat
// that as a cosmetic defect, not a failure.
func (i Interval) Clock() string {
	if !i.Canonical() {
		return fmt.Sprintf("invalid interval code %d", int(i))
	}
	return fmt.Sprintf("%d:%02d", int(i)/100, int(i)%100)
}

// CanonicalIntervals returns all 288 slot codes in ascending order.
func CanonicalIntervals() []Interval {
	out := make([]Interval, 0, SlotsPerDay)
	for hh := 0; hh < 24; hh++ {
		for mm := 0; mm < 60; mm += 5 {
			out = append(out, Interval(hh*100+mm))
		}
	}
	return out
}
