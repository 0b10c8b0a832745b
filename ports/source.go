package ports

import (
	"context"

	"steplab/domain/activity"
)

// ObservationSource loads the raw observation table. Implementations must
// preserve input row order and count, and must fail on the first malformed
// row: the pipeline has no partial-success mode.
type ObservationSource interface {
	Read(ctx context.Context) ([]activity.Observation, error)
}
