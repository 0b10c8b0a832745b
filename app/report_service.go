package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"steplab/domain/activity"
	"steplab/domain/core"
	"steplab/domain/run"
	"steplab/internal"
	"steplab/internal/analysis"
	"steplab/internal/errors"
	"steplab/internal/report"
	"steplab/ports"
)

// Artifact file names within the output directory.
const (
	FileRawHistogram     = "daily_totals_raw.png"
	FileImputedHistogram = "daily_totals_imputed.png"
	FileIntervalSeries   = "interval_means.png"
	FileWeekpartSeries   = "weekpart_means.png"
	FileWorkbook         = "tables.xlsx"
	FileReportMarkdown   = "report.md"
	FileReportHTML       = "report.html"
	FileManifest         = "manifest.json"
)

// ReportService runs the full pipeline over one input file and renders the
// report bundle into an output directory.
type ReportService struct {
	source    ports.ObservationSource
	plots     ports.PlotRenderer
	exporter  ports.TableExporter
	logger    *internal.Logger
	inputPath string
	outDir    string
}

// NewReportService wires the pipeline to its adapters
func NewReportService(
	source ports.ObservationSource,
	plots ports.PlotRenderer,
	exporter ports.TableExporter,
	logger *internal.Logger,
	inputPath, outDir string,
) *ReportService {
	return &ReportService{
		source:    source,
		plots:     plots,
		exporter:  exporter,
		logger:    logger,
		inputPath: inputPath,
		outDir:    outDir,
	}
}

// Run executes the four pipeline stages strictly in dependency order, then
// renders the presentation artifacts from the finished tables. Rendering is
// the only concurrent part: every artifact reads completed tables and writes
// its own file.
func (s *ReportService) Run(ctx context.Context) (*run.ReportManifest, error) {
	tables, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}
	if err := s.render(ctx, tables); err != nil {
		return nil, err
	}

	manifest, err := s.writeManifest(tables.Summary)
	if err != nil {
		return nil, err
	}
	s.logger.Info("report bundle written to %s (run %s)", s.outDir, manifest.RunID)
	return manifest, nil
}

// compute runs Loader -> Daily Aggregator -> Interval Averager -> Imputer.
func (s *ReportService) compute(ctx context.Context) (activity.Tables, error) {
	var tables activity.Tables

	obs, err := s.source.Read(ctx)
	if err != nil {
		return tables, errors.InputMalformed("loading observations failed", err)
	}
	s.logger.Info("loaded %d observations from %s", len(obs), s.inputPath)

	tables.Daily = analysis.DailyTotals(obs)
	tables.IntervalMeans = analysis.IntervalMeans(obs)
	if got := len(tables.IntervalMeans); got != activity.SlotsPerDay {
		return tables, errors.DataIntegrity(
			fmt.Sprintf("found %d distinct interval codes, want %d", got, activity.SlotsPerDay), nil)
	}

	imputed, err := analysis.Impute(obs, tables.IntervalMeans)
	if err != nil {
		return tables, errors.DataIntegrity("imputation failed", err)
	}
	tables.Imputed = imputed
	tables.ImputedDaily = analysis.ImputedDailyTotals(imputed)
	tables.Weekpart = analysis.WeekpartMeans(imputed)

	summary, err := analysis.Summarize(obs, tables.Daily, tables.IntervalMeans, tables.ImputedDaily, tables.Weekpart)
	if err != nil {
		return tables, errors.DataIntegrity("summarizing failed", err)
	}
	tables.Summary = summary
	s.logger.Debug("pipeline complete: %d days, %d missing observations",
		summary.Days, summary.MissingObservations)

	return tables, nil
}

func (s *ReportService) render(ctx context.Context, tables activity.Tables) error {
	figs := report.Figures{
		RawHistogram:     FileRawHistogram,
		ImputedHistogram: FileImputedHistogram,
		IntervalSeries:   FileIntervalSeries,
		WeekpartSeries:   FileWeekpartSeries,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.plots.DailyTotalsHistogram("Total steps per day",
			analysis.DefinedTotals(tables.Daily), s.artifact(FileRawHistogram))
		return errors.Wrap(err, "render raw histogram")
	})
	g.Go(func() error {
		totals := make([]float64, 0, len(tables.ImputedDaily))
		for _, d := range tables.ImputedDaily {
			totals = append(totals, d.Steps)
		}
		err := s.plots.DailyTotalsHistogram("Total steps per day (imputed)",
			totals, s.artifact(FileImputedHistogram))
		return errors.Wrap(err, "render imputed histogram")
	})
	g.Go(func() error {
		err := s.plots.IntervalSeries(tables.IntervalMeans, tables.Summary.PeakInterval,
			s.artifact(FileIntervalSeries))
		return errors.Wrap(err, "render interval series")
	})
	g.Go(func() error {
		err := s.plots.WeekpartSeries(tables.Weekpart, s.artifact(FileWeekpartSeries))
		return errors.Wrap(err, "render weekpart series")
	})
	g.Go(func() error {
		err := s.exporter.Export(tables, s.artifact(FileWorkbook))
		return errors.Wrap(err, "export workbook")
	})
	g.Go(func() error {
		md := report.Markdown(tables, figs)
		if err := os.WriteFile(s.artifact(FileReportMarkdown), md, 0o644); err != nil {
			return errors.Wrap(err, "write markdown narrative")
		}
		if err := os.WriteFile(s.artifact(FileReportHTML), report.HTML(md), 0o644); err != nil {
			return errors.Wrap(err, "write HTML narrative")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return errors.RenderFailed("report bundle", err)
	}
	return nil
}

func (s *ReportService) writeManifest(summary activity.Summary) (*run.ReportManifest, error) {
	inputHash, err := core.HashFile(s.inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "hash input file")
	}

	manifest := run.NewReportManifest(s.inputPath, inputHash, summary, []string{
		FileRawHistogram,
		FileImputedHistogram,
		FileIntervalSeries,
		FileWeekpartSeries,
		FileWorkbook,
		FileReportMarkdown,
		FileReportHTML,
	})

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode manifest")
	}
	if err := os.WriteFile(s.artifact(FileManifest), data, 0o644); err != nil {
		return nil, errors.Wrap(err, "write manifest")
	}
	return manifest, nil
}

func (s *ReportService) artifact(name string) string {
	return filepath.Join(s.outDir, name)
}
