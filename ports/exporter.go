package ports

import "steplab/domain/activity"

// TableExporter persists the computed tables as a spreadsheet workbook for
// readers who want the numbers behind the figures.
type TableExporter interface {
	Export(tables activity.Tables, path string) error
}
