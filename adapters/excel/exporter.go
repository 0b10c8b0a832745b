package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"steplab/domain/activity"
)

// Sheet names in the exported workbook.
const (
	sheetDaily    = "Daily Totals"
	sheetInterval = "Interval Averages"
	sheetWeekpart = "Weekpart Averages"
	sheetSummary  = "Summary"
)

// Exporter writes the computed tables to an xlsx workbook, one sheet per
// table. Missing values become empty cells, never zeros.
type Exporter struct{}

// NewExporter creates a workbook exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes every table to path.
func (e *Exporter) Export(tables activity.Tables, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetDaily); err != nil {
		return err
	}
	for _, name := range []string{sheetInterval, sheetWeekpart, sheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeDaily(f, tables); err != nil {
		return fmt.Errorf("write %s: %w", sheetDaily, err)
	}
	if err := writeIntervalMeans(f, tables.IntervalMeans); err != nil {
		return fmt.Errorf("write %s: %w", sheetInterval, err)
	}
	if err := writeWeekpart(f, tables.Weekpart); err != nil {
		return fmt.Errorf("write %s: %w", sheetWeekpart, err)
	}
	if err := writeSummary(f, tables.Summary); err != nil {
		return fmt.Errorf("write %s: %w", sheetSummary, err)
	}

	return f.SaveAs(path)
}

func writeDaily(f *excelize.File, tables activity.Tables) error {
	if err := setRow(f, sheetDaily, 1, "date", "steps", "missing slots", "imputed steps"); err != nil {
		return err
	}
	imputedByDate := make(map[string]float64, len(tables.ImputedDaily))
	for _, d := range tables.ImputedDaily {
		imputedByDate[d.Date.Format(activity.DateLayout)] = d.Steps
	}
	for i, d := range tables.Daily {
		date := d.Date.Format(activity.DateLayout)
		var steps interface{}
		if d.Steps != nil {
			steps = *d.Steps
		}
		if err := setRow(f, sheetDaily, i+2, date, steps, d.Missing, imputedByDate[date]); err != nil {
			return err
		}
	}
	return nil
}

func writeIntervalMeans(f *excelize.File, means []activity.IntervalMean) error {
	if err := setRow(f, sheetInterval, 1, "interval", "time", "mean steps", "observations"); err != nil {
		return err
	}
	for i, m := range means {
		var mean interface{}
		if m.Defined() {
			mean = *m.Mean
		}
		if err := setRow(f, sheetInterval, i+2, int(m.Interval), m.Interval.Clock(), mean, m.N); err != nil {
			return err
		}
	}
	return nil
}

func writeWeekpart(f *excelize.File, parts activity.WeekpartMeans) error {
	if err := setRow(f, sheetWeekpart, 1, "interval", "time", "weekday mean", "weekend mean"); err != nil {
		return err
	}
	weekend := make(map[activity.Interval]*float64, len(parts.Weekend))
	for _, m := range parts.Weekend {
		weekend[m.Interval] = m.Mean
	}
	for i, m := range parts.Weekday {
		var wd, we interface{}
		if m.Defined() {
			wd = *m.Mean
		}
		if p := weekend[m.Interval]; p != nil {
			we = *p
		}
		if err := setRow(f, sheetWeekpart, i+2, int(m.Interval), m.Interval.Clock(), wd, we); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, s activity.Summary) error {
	rows := [][2]interface{}{
		{"observations", s.Rows},
		{"days", s.Days},
		{"missing observations", s.MissingObservations},
		{"missing rate", s.MissingRate},
		{"fully missing days", s.MissingDays},
		{"mean daily steps (raw)", s.RawMeanDaily},
		{"median daily steps (raw)", s.RawMedianDaily},
		{"mean daily steps (imputed)", s.ImputedMeanDaily},
		{"median daily steps (imputed)", s.ImputedMedianDaily},
		{"peak interval", s.PeakInterval.Clock()},
		{"peak interval mean steps", s.PeakMean},
		{"weekday/weekend profile correlation", s.WeekpartCorrelation},
	}
	for i, row := range rows {
		if err := setRow(f, sheetSummary, i+1, row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
