package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"steplab/domain/activity"
)

// ActivityGeneratorConfig configures the synthetic dataset generator
type ActivityGeneratorConfig struct {
	Days        int       `json:"days"`
	MissingDays []int     `json:"missing_days"` // zero-based day offsets recorded as whole-day gaps
	StartDate   time.Time `json:"start_date"`
	Seed        int64     `json:"seed"`
	PeakHour    float64   `json:"peak_hour"`
	BaseSteps   float64   `json:"base_steps"`
	PeakSteps   float64   `json:"peak_steps"`
}

// DefaultActivityConfig returns a two-month dataset shaped like the real one:
// 288 slots per day with eight whole days unrecorded.
func DefaultActivityConfig() ActivityGeneratorConfig {
	return ActivityGeneratorConfig{
		Days:        61,
		MissingDays: []int{0, 7, 31, 34, 39, 40, 44, 60},
		StartDate:   time.Date(2012, 10, 1, 0, 0, 0, 0, time.UTC),
		Seed:        42,
		PeakHour:    8.5,
		BaseSteps:   12,
		PeakSteps:   180,
	}
}

// ActivityGenerator produces a canonical observation table: every date
// contributes all 288 slot codes in ascending order, gaps occur only as
// whole-day blocks, and present counts follow a diurnal curve.
type ActivityGenerator struct {
	config ActivityGeneratorConfig
	rng    *rand.Rand
}

// NewActivityGenerator creates a seeded generator
func NewActivityGenerator(config ActivityGeneratorConfig) *ActivityGenerator {
	return &ActivityGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate produces the full observation table
func (g *ActivityGenerator) Generate() []activity.Observation {
	missing := make(map[int]bool, len(g.config.MissingDays))
	for _, d := range g.config.MissingDays {
		missing[d] = true
	}

	slots := activity.CanonicalIntervals()
	out := make([]activity.Observation, 0, g.config.Days*activity.SlotsPerDay)
	for day := 0; day < g.config.Days; day++ {
		date := g.config.StartDate.AddDate(0, 0, day)
		for _, slot := range slots {
			obs := activity.Observation{Date: date, Interval: slot}
			if !missing[day] {
				steps := g.stepsAt(slot)
				obs.Steps = &steps
			}
			out = append(out, obs)
		}
	}
	return out
}

// stepsAt samples a step count for one slot: a gaussian bump around the peak
// hour on top of a low base rate, with multiplicative noise. Night slots are
// mostly zero.
func (g *ActivityGenerator) stepsAt(slot activity.Interval) int {
	hour := slot.Hours()
	if hour < 6 && g.rng.Float64() < 0.9 {
		return 0
	}
	spread := 2.0
	bump := g.config.PeakSteps * math.Exp(-math.Pow(hour-g.config.PeakHour, 2)/(2*spread*spread))
	noise := 0.5 + g.rng.Float64()
	steps := int((g.config.BaseSteps + bump) * noise)
	if steps < 0 {
		steps = 0
	}
	return steps
}

// WriteCSV writes observations in the loader's input format, NA for missing
// values. Used to build test fixtures and demo datasets.
func WriteCSV(path string, obs []activity.Observation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"steps", "date", "interval"}); err != nil {
		return err
	}
	for _, o := range obs {
		steps := "NA"
		if o.Steps != nil {
			steps = strconv.Itoa(*o.Steps)
		}
		record := []string{steps, o.Date.Format(activity.DateLayout), strconv.Itoa(int(o.Interval))}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
