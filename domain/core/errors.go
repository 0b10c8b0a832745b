package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrEmptyID = errors.New("identifier cannot be empty")

	// Input errors
	ErrEmptyDataset         = errors.New("dataset contains no observations")
	ErrMalformedRow         = errors.New("malformed input row")
	ErrNonCanonicalInterval = errors.New("interval code outside the canonical slot set")

	// Aggregation errors
	ErrUndefinedMean = errors.New("interval mean undefined")
	ErrDataIntegrity = errors.New("data integrity violation")
)

// NewMalformedRowError annotates a parse failure with the offending line number
func NewMalformedRowError(line int, cause error) error {
	return fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, cause)
}

// NewDataIntegrityError wraps a structural violation of the dataset shape
func NewDataIntegrityError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDataIntegrity, reason)
}

// IsInputError reports whether err originates from malformed source data
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedRow) ||
		errors.Is(err, ErrNonCanonicalInterval) ||
		errors.Is(err, ErrEmptyDataset)
}

// IsIntegrityError reports whether err signals a violated dataset invariant
func IsIntegrityError(err error) bool {
	return errors.Is(err, ErrDataIntegrity) || errors.Is(err, ErrUndefinedMean)
}
