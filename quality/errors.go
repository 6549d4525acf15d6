package quality

import "errors"

var (
	// ErrInvalidTargetLabel is returned when the target label is not 0 or 1.
	ErrInvalidTargetLabel = errors.New("target label must be 0 or 1")

	// ErrInvalidSignificance is returned for a negative z threshold.
	ErrInvalidSignificance = errors.New("significance threshold must be non-negative")

	// ErrUndefinedSignificance is returned when the z-score has no finite value:
	// the hypothesis covers no instance or the population is pure.
	ErrUndefinedSignificance = errors.New("significance undefined")
)
