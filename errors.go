package midos

import (
	"errors"
	"fmt"

	"github.com/hupe1980/midos/internal/engine"
	"github.com/hupe1980/midos/quality"
)

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must be non-negative")

	// ErrInvalidWorkers is returned when the worker count is negative.
	ErrInvalidWorkers = errors.New("workers must be non-negative")

	// ErrNilDataset is returned when no dataset is given.
	ErrNilDataset = errors.New("dataset is nil")
)

// ErrInvalidTargetLabel indicates a target label other than 0 or 1.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidTargetLabel struct {
	Label uint8
	cause error
}

func (e *ErrInvalidTargetLabel) Error() string {
	return fmt.Sprintf("invalid target label: %d", e.Label)
}

func (e *ErrInvalidTargetLabel) Unwrap() error { return e.cause }

func translateError(err error, o *options) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, engine.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, engine.ErrInvalidWorkers) {
		return fmt.Errorf("%w: %w", ErrInvalidWorkers, err)
	}
	if errors.Is(err, quality.ErrInvalidTargetLabel) {
		return &ErrInvalidTargetLabel{Label: o.quality.TargetLabel, cause: err}
	}

	return err
}
