package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.CSVPath != "data/activity.csv" {
		t.Errorf("input = %q", cfg.Input.CSVPath)
	}
	if cfg.Output.Dir != "report" {
		t.Errorf("out = %q", cfg.Output.Dir)
	}
	if cfg.Plot.HistogramBins != 16 {
		t.Errorf("bins = %d", cfg.Plot.HistogramBins)
	}
	if cfg.Source.URL == "" {
		t.Error("source URL default missing")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STEPLAB_INPUT", "/tmp/steps.csv")
	t.Setenv("STEPLAB_HIST_BINS", "24")
	t.Setenv("STEPLAB_PLOT_WIDTH", "10.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.CSVPath != "/tmp/steps.csv" {
		t.Errorf("input = %q", cfg.Input.CSVPath)
	}
	if cfg.Plot.HistogramBins != 24 {
		t.Errorf("bins = %d", cfg.Plot.HistogramBins)
	}
	if cfg.Plot.WidthInches != 10.5 {
		t.Errorf("width = %v", cfg.Plot.WidthInches)
	}
}

func TestLoad_RejectsInvalidBins(t *testing.T) {
	t.Setenv("STEPLAB_HIST_BINS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for zero bins")
	}
}
