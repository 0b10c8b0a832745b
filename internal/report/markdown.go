package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"steplab/domain/activity"
)

// Figures names the image artifacts the narrative embeds, relative to the
// report file itself.
type Figures struct {
	RawHistogram     string
	ImputedHistogram string
	IntervalSeries   string
	WeekpartSeries   string
}

// Markdown renders the narrative for one finished run. It is a pure function
// of the computed tables; nothing here feeds back into the pipeline.
func Markdown(tables activity.Tables, figs Figures) []byte {
	s := tables.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "# Personal activity report\n\n")
	fmt.Fprintf(&b, "Dataset of %d step-count observations across %d days, one per 5-minute interval (%d slots per day).\n\n",
		s.Rows, s.Days, activity.SlotsPerDay)

	fmt.Fprintf(&b, "## Daily totals\n\n")
	fmt.Fprintf(&b, "Mean total steps per day: **%.2f** (median %.2f). Days containing any unmeasured interval are reported without a total rather than partially summed, so whole-day recording gaps stay visible.\n\n",
		s.RawMeanDaily, s.RawMedianDaily)
	fmt.Fprintf(&b, "![Daily totals](%s)\n\n", figs.RawHistogram)

	fmt.Fprintf(&b, "## Daily activity pattern\n\n")
	fmt.Fprintf(&b, "Averaged across all measured days, activity peaks at **%s** with %.2f steps in that interval.\n\n",
		s.PeakInterval.Clock(), s.PeakMean)
	fmt.Fprintf(&b, "![Interval averages](%s)\n\n", figs.IntervalSeries)

	fmt.Fprintf(&b, "## Missing data and imputation\n\n")
	fmt.Fprintf(&b, "%d observations (%.1f%%) are missing, all of them as %d whole recording-free days.\n",
		s.MissingObservations, s.MissingRate*100, s.MissingDays)
	fmt.Fprintf(&b, "Each missing slot was filled with its interval's across-day average. After imputation the mean total is %.2f and the median %.2f.\n\n",
		s.ImputedMeanDaily, s.ImputedMedianDaily)
	fmt.Fprintf(&b, "![Imputed daily totals](%s)\n\n", figs.ImputedHistogram)

	fmt.Fprintf(&b, "## Weekdays vs weekends\n\n")
	fmt.Fprintf(&b, "Splitting the completed dataset by day kind gives one %d-slot profile per part. The two profiles correlate at r = %.3f.\n\n",
		activity.SlotsPerDay, s.WeekpartCorrelation)
	fmt.Fprintf(&b, "![Weekday vs weekend](%s)\n\n", figs.WeekpartSeries)

	fmt.Fprintf(&b, "## Incomplete days\n\n")
	writeIncompleteDays(&b, tables.Daily)

	return []byte(b.String())
}

func writeIncompleteDays(b *strings.Builder, daily []activity.DailyTotal) {
	var any bool
	for _, d := range daily {
		if d.Missing == 0 {
			continue
		}
		if !any {
			fmt.Fprintf(b, "| date | missing slots |\n|---|---|\n")
			any = true
		}
		fmt.Fprintf(b, "| %s | %d |\n", d.Date.Format(activity.DateLayout), d.Missing)
	}
	if !any {
		fmt.Fprintf(b, "Every day in the dataset is complete.\n")
		return
	}
	fmt.Fprintf(b, "\n")
}

// HTML renders the markdown narrative to a standalone HTML page.
func HTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Personal activity report",
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, renderer)
}
