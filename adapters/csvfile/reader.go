package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"steplab/domain/activity"
	"steplab/domain/core"
)

// Reader loads the raw activity table from a three-column CSV file with a
// header row (steps,date,interval). Row order and count are preserved.
type Reader struct {
	path string
}

// NewReader creates a reader for the given CSV file
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Read parses the full file into observations. The first malformed row aborts
// the load: the report has no partial-success mode, so a skipped row would
// silently shift every downstream aggregate.
func (r *Reader) Read(ctx context.Context) ([]activity.Observation, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open activity file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var out []activity.Observation
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, core.NewMalformedRowError(line, err)
		}
		obs, err := parseRow(record)
		if err != nil {
			return nil, core.NewMalformedRowError(line, err)
		}
		out = append(out, obs)
	}

	if len(out) == 0 {
		return nil, core.ErrEmptyDataset
	}
	return out, nil
}

func validateHeader(header []string) error {
	want := []string{"steps", "date", "interval"}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(name), want[i]) {
			return fmt.Errorf("%w: header column %d is %q, want %q",
				core.ErrMalformedRow, i+1, name, want[i])
		}
	}
	return nil
}

func parseRow(record []string) (activity.Observation, error) {
	var obs activity.Observation

	// An empty field or the literal NA marker means the slot was not measured.
	rawSteps := strings.TrimSpace(record[0])
	if rawSteps != "" && !strings.EqualFold(rawSteps, "NA") {
		n, err := strconv.Atoi(rawSteps)
		if err != nil {
			return obs, fmt.Errorf("steps value %q is not an integer", rawSteps)
		}
		if n < 0 {
			return obs, fmt.Errorf("steps value %d is negative", n)
		}
		obs.Steps = &n
	}

	date, err := time.Parse(activity.DateLayout, strings.TrimSpace(record[1]))
	if err != nil {
		return obs, fmt.Errorf("date value %q does not match %s", record[1], activity.DateLayout)
	}
	obs.Date = date

	code, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return obs, fmt.Errorf("interval value %q is not an integer", record[2])
	}
	interval := activity.Interval(code)
	if !interval.Canonical() {
		return obs, fmt.Errorf("%w: %d", core.ErrNonCanonicalInterval, code)
	}
	obs.Interval = interval

	return obs, nil
}
