package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"steplab/domain/activity"
)

// Renderer draws the report figures as PNG files using gonum/plot. It is a
// pure consumer of finished tables: no shared plotting state survives a call.
type Renderer struct {
	bins   int
	width  vg.Length
	height vg.Length
}

// NewRenderer creates a renderer with the given histogram bin count and
// figure dimensions in inches.
func NewRenderer(bins int, widthInches, heightInches float64) *Renderer {
	return &Renderer{
		bins:   bins,
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
	}
}

// DailyTotalsHistogram draws the distribution of defined daily totals.
func (r *Renderer) DailyTotalsHistogram(title string, totals []float64, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "steps per day"
	p.Y.Label.Text = "days"

	h, err := plotter.NewHist(plotter.Values(totals), r.bins)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(h)

	return p.Save(r.width, r.height, path)
}

// IntervalSeries draws the across-day interval averages as a time series,
// naming the peak slot in the title. Slots without a defined mean are left
// out of the line rather than drawn at zero.
func (r *Renderer) IntervalSeries(means []activity.IntervalMean, peak activity.Interval, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Average steps per 5-minute interval (peak at %s)", peak.Clock())
	p.X.Label.Text = "hour of day"
	p.Y.Label.Text = "average steps"

	line, err := plotter.NewLine(seriesPoints(means))
	if err != nil {
		return fmt.Errorf("build interval series: %w", err)
	}
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(line)

	return p.Save(r.width, r.height, path)
}

// WeekpartSeries draws the weekday and weekend interval profiles together.
func (r *Renderer) WeekpartSeries(parts activity.WeekpartMeans, path string) error {
	p := plot.New()
	p.Title.Text = "Average steps per interval, weekdays vs weekends"
	p.X.Label.Text = "hour of day"
	p.Y.Label.Text = "average steps"

	weekday, err := plotter.NewLine(seriesPoints(parts.Weekday))
	if err != nil {
		return fmt.Errorf("build weekday series: %w", err)
	}
	weekday.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	weekend, err := plotter.NewLine(seriesPoints(parts.Weekend))
	if err != nil {
		return fmt.Errorf("build weekend series: %w", err)
	}
	weekend.Color = color.RGBA{R: 230, G: 126, B: 34, A: 255}

	p.Add(weekday, weekend)
	p.Legend.Add(string(activity.Weekday), weekday)
	p.Legend.Add(string(activity.Weekend), weekend)
	p.Legend.Top = true

	return p.Save(r.width, r.height, path)
}

func seriesPoints(means []activity.IntervalMean) plotter.XYs {
	pts := make(plotter.XYs, 0, len(means))
	for _, m := range means {
		if !m.Defined() {
			continue
		}
		pts = append(pts, plotter.XY{X: m.Interval.Hours(), Y: *m.Mean})
	}
	return pts
}
