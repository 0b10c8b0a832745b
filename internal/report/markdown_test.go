package report

import (
	"strings"
	"testing"
	"time"

	"steplab/domain/activity"
)

func sampleTables(t *testing.T) activity.Tables {
	t.Helper()
	date, err := time.Parse(activity.DateLayout, "2012-10-02")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	steps := 1000
	return activity.Tables{
		Daily: []activity.DailyTotal{
			{Date: date, Steps: &steps},
			{Date: date.AddDate(0, 0, 1), Missing: activity.SlotsPerDay},
		},
		Summary: activity.Summary{
			Rows:                576,
			Days:                2,
			MissingObservations: 288,
			MissingRate:         0.5,
			MissingDays:         1,
			RawMeanDaily:        1000,
			RawMedianDaily:      1000,
			ImputedMeanDaily:    1000,
			ImputedMedianDaily:  1000,
			PeakInterval:        835,
			PeakMean:            206.17,
			WeekpartCorrelation: 0.71,
		},
	}
}

func sampleFigures() Figures {
	return Figures{
		RawHistogram:     "daily_totals_raw.png",
		ImputedHistogram: "daily_totals_imputed.png",
		IntervalSeries:   "interval_means.png",
		WeekpartSeries:   "weekpart_means.png",
	}
}

func TestMarkdown(t *testing.T) {
	md := string(Markdown(sampleTables(t), sampleFigures()))

	for _, want := range []string{
		"# Personal activity report",
		"## Daily totals",
		"## Missing data and imputation",
		"## Weekdays vs weekends",
		"8:35", // peak interval formatted as a clock label
		"288 observations (50.0%)",
		"![Daily totals](daily_totals_raw.png)",
		"![Weekday vs weekend](weekpart_means.png)",
		"| 2012-10-03 | 288 |", // the incomplete day shows up in the table
	} {
		if !strings.Contains(md, want) {
			t.Errorf("narrative missing %q", want)
		}
	}
}

func TestMarkdown_NoIncompleteDays(t *testing.T) {
	tables := sampleTables(t)
	tables.Daily = tables.Daily[:1]
	md := string(Markdown(tables, sampleFigures()))
	if !strings.Contains(md, "Every day in the dataset is complete.") {
		t.Error("narrative should state that no day is incomplete")
	}
}

func TestHTML(t *testing.T) {
	md := Markdown(sampleTables(t), sampleFigures())
	html := string(HTML(md))

	for _, want := range []string{
		"<html>",
		"<h1",
		"Personal activity report",
		`<img src="interval_means.png"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}
