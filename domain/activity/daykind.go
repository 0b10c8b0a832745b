package activity

import "time"

// DayKind partitions dates into weekdays and weekend days.
type DayKind string

const (
	Weekday DayKind = "weekday"
	Weekend DayKind = "weekend"
)

// DayKindOf classifies a date by its weekday name.
func DayKindOf(date time.Time) DayKind {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}
