package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"steplab/adapters/csvfile"
	"steplab/adapters/excel"
	"steplab/adapters/fetch"
	plotadapter "steplab/adapters/plot"
	"steplab/app"
	"steplab/internal"
	"steplab/internal/config"
	apperrors "steplab/internal/errors"
)

func main() {
	// .env is optional; the environment may already carry everything needed.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "steplab",
		Short: "Generate a statistical report from a personal-activity dataset",
	}

	rootCmd.AddCommand(
		newReportCmd(),
		newFetchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newReportCmd() *cobra.Command {
	var input, out string
	var bins int
	var skipFetch bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the analysis pipeline and render the report bundle",
		Long: `Load the activity CSV, compute daily totals, interval averages and
missing-data diagnostics, impute gaps from interval averages, split the
completed data by weekday/weekend, and render plots, tables and narrative.

The source archive is downloaded first unless the CSV already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if input != "" {
				cfg.Input.CSVPath = input
			}
			if out != "" {
				cfg.Output.Dir = out
			}
			if cmd.Flags().Changed("bins") {
				cfg.Plot.HistogramBins = bins
			}

			logger := internal.DefaultLogger
			if skipFetch {
				if _, err := os.Stat(cfg.Input.CSVPath); err != nil {
					return apperrors.InputMissing(cfg.Input.CSVPath)
				}
			} else {
				fetcher := fetch.NewFetcher(logger)
				if err := fetcher.Ensure(cmd.Context(), cfg.Source.URL, cfg.Source.ArchivePath, cfg.Input.CSVPath); err != nil {
					return err
				}
			}

			service := app.NewReportService(
				csvfile.NewReader(cfg.Input.CSVPath),
				plotadapter.NewRenderer(cfg.Plot.HistogramBins, cfg.Plot.WidthInches, cfg.Plot.HeightInches),
				excel.NewExporter(),
				logger,
				cfg.Input.CSVPath,
				cfg.Output.Dir,
			)
			manifest, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}

			s := manifest.Summary
			fmt.Printf("run %s\n", manifest.RunID)
			fmt.Printf("observations %d  days %d  missing %d (%.1f%%)  missing days %d\n",
				s.Rows, s.Days, s.MissingObservations, s.MissingRate*100, s.MissingDays)
			fmt.Printf("daily steps   mean %.2f  median %.2f\n", s.RawMeanDaily, s.RawMedianDaily)
			fmt.Printf("after impute  mean %.2f  median %.2f\n", s.ImputedMeanDaily, s.ImputedMedianDaily)
			fmt.Printf("peak interval %s (%.2f steps)\n", s.PeakInterval.Clock(), s.PeakMean)
			fmt.Printf("bundle: %s\n", cfg.Output.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the activity CSV (default from STEPLAB_INPUT)")
	cmd.Flags().StringVar(&out, "out", "", "Output directory for the report bundle (default from STEPLAB_OUT)")
	cmd.Flags().IntVar(&bins, "bins", 16, "Histogram bin count")
	cmd.Flags().BoolVar(&skipFetch, "skip-fetch", false, "Fail instead of downloading when the input CSV is absent")

	return cmd
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and extract the source dataset without running the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fetcher := fetch.NewFetcher(internal.DefaultLogger)
			return fetcher.Ensure(cmd.Context(), cfg.Source.URL, cfg.Source.ArchivePath, cfg.Input.CSVPath)
		},
	}
	return cmd
}
