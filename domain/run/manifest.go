package run

import (
	"time"

	"steplab/domain/activity"
	"steplab/domain/core"
)

// ReportManifest records what a report run consumed and produced.
// It is written last, after every artifact exists, so a complete manifest
// implies a complete bundle.
type ReportManifest struct {
	RunID               core.RunID       `json:"run_id"`
	InputPath           string           `json:"input_path"`
	InputHash           core.Hash        `json:"input_sha256"`
	Rows                int              `json:"rows"`
	Days                int              `json:"days"`
	MissingObservations int              `json:"missing_observations"`
	MissingDays         int              `json:"missing_days"`
	Summary             activity.Summary `json:"summary"`
	Artifacts           []string         `json:"artifacts"`
	GeneratedAt         time.Time        `json:"generated_at"`
}

// NewReportManifest creates a manifest for a finished run.
func NewReportManifest(inputPath string, inputHash core.Hash, summary activity.Summary, artifacts []string) *ReportManifest {
	return &ReportManifest{
		RunID:               core.NewRunID(),
		InputPath:           inputPath,
		InputHash:           inputHash,
		Rows:                summary.Rows,
		Days:                summary.Days,
		MissingObservations: summary.MissingObservations,
		MissingDays:         summary.MissingDays,
		Summary:             summary,
		Artifacts:           artifacts,
		GeneratedAt:         time.Now().UTC(),
	}
}
