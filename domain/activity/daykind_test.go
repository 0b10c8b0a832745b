package activity

import (
	"testing"
	"time"
)

func TestDayKindOf(t *testing.T) {
	cases := []struct {
		date string
		want DayKind
	}{
		{"2012-10-01", Weekday}, // Monday
		{"2012-10-05", Weekday}, // Friday
		{"2012-10-06", Weekend}, // Saturday
		{"2012-10-07", Weekend}, // Sunday
		{"2012-11-30", Weekday}, // Friday
	}
	for _, c := range cases {
		date, err := time.Parse(DateLayout, c.date)
		if err != nil {
			t.Fatalf("parse %s: %v", c.date, err)
		}
		if got := DayKindOf(date); got != c.want {
			t.Errorf("DayKindOf(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}
