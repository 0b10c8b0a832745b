package app

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steplab/adapters/csvfile"
	"steplab/adapters/excel"
	plotadapter "steplab/adapters/plot"
	"steplab/domain/activity"
	"steplab/domain/run"
	"steplab/internal"
	"steplab/internal/testkit"
)

func TestReportService_EndToEnd(t *testing.T) {
	cfg := testkit.DefaultActivityConfig()
	obs := testkit.NewActivityGenerator(cfg).Generate()

	dir := t.TempDir()
	input := filepath.Join(dir, "activity.csv")
	require.NoError(t, testkit.WriteCSV(input, obs))
	outDir := filepath.Join(dir, "report")

	service := NewReportService(
		csvfile.NewReader(input),
		plotadapter.NewRenderer(16, 7, 4),
		excel.NewExporter(),
		internal.NewLogger(internal.LogLevelError),
		input,
		outDir,
	)

	manifest, err := service.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, manifest)

	assert.Equal(t, cfg.Days*activity.SlotsPerDay, manifest.Rows)
	assert.Equal(t, cfg.Days, manifest.Days)
	assert.Equal(t, len(cfg.MissingDays), manifest.MissingDays)
	assert.Equal(t, len(cfg.MissingDays)*activity.SlotsPerDay, manifest.MissingObservations)
	assert.False(t, manifest.RunID.String() == "")
	assert.False(t, manifest.InputHash.IsEmpty())

	// The whole-day gap structure makes imputation mean-preserving.
	assert.InDelta(t, manifest.Summary.RawMeanDaily, manifest.Summary.ImputedMeanDaily, 1e-6)
	assert.True(t, manifest.Summary.PeakInterval.Canonical())

	// Every artifact named by the manifest exists and is non-empty.
	for _, name := range manifest.Artifacts {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "artifact %s", name)
		assert.Greater(t, info.Size(), int64(0), "artifact %s", name)
	}

	// The manifest on disk round-trips.
	data, err := os.ReadFile(filepath.Join(outDir, FileManifest))
	require.NoError(t, err)
	var fromDisk run.ReportManifest
	require.NoError(t, json.Unmarshal(data, &fromDisk))
	assert.Equal(t, manifest.RunID, fromDisk.RunID)
	assert.Equal(t, manifest.InputHash, fromDisk.InputHash)
}

func TestReportService_MalformedInputAborts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "activity.csv")
	require.NoError(t, os.WriteFile(input,
		[]byte("steps,date,interval\n5,not-a-date,0\n"), 0o644))

	service := NewReportService(
		csvfile.NewReader(input),
		plotadapter.NewRenderer(16, 7, 4),
		excel.NewExporter(),
		internal.NewLogger(internal.LogLevelError),
		input,
		filepath.Join(dir, "report"),
	)

	_, err := service.Run(context.Background())
	require.Error(t, err)

	// Nothing is rendered on a failed run.
	_, statErr := os.Stat(filepath.Join(dir, "report"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestReportService_IncompleteIntervalCoverage(t *testing.T) {
	// A dataset that never reaches all 288 slots violates the canonical-shape
	// invariant and must halt before imputation.
	dir := t.TempDir()
	input := filepath.Join(dir, "activity.csv")
	require.NoError(t, os.WriteFile(input,
		[]byte("steps,date,interval\n5,2012-10-01,0\n7,2012-10-01,5\n"), 0o644))

	service := NewReportService(
		csvfile.NewReader(input),
		plotadapter.NewRenderer(16, 7, 4),
		excel.NewExporter(),
		internal.NewLogger(internal.LogLevelError),
		input,
		filepath.Join(dir, "report"),
	)

	_, err := service.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distinct interval codes")
}

func TestReportService_SmallDataset(t *testing.T) {
	// One missing day inside a single Monday-to-Sunday week, so both day
	// kinds contribute to the weekpart profiles.
	dir := t.TempDir()
	input := filepath.Join(dir, "activity.csv")

	cfg := testkit.ActivityGeneratorConfig{
		Days:        7,
		MissingDays: []int{2},
		StartDate:   time.Date(2012, time.October, 1, 0, 0, 0, 0, time.UTC),
		Seed:        7,
		PeakHour:    8.5,
		BaseSteps:   10,
		PeakSteps:   100,
	}
	obs := testkit.NewActivityGenerator(cfg).Generate()
	require.NoError(t, testkit.WriteCSV(input, obs))

	service := NewReportService(
		csvfile.NewReader(input),
		plotadapter.NewRenderer(8, 7, 4),
		excel.NewExporter(),
		internal.NewLogger(internal.LogLevelError),
		input,
		filepath.Join(dir, "report"),
	)

	manifest, err := service.Run(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, manifest.Summary.RawMeanDaily, manifest.Summary.ImputedMeanDaily, 1e-6)
	assert.False(t, math.IsNaN(manifest.Summary.WeekpartCorrelation))
}
