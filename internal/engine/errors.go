package engine

import "errors"

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must be non-negative")

	// ErrInvalidWorkers is returned when the worker count is negative.
	ErrInvalidWorkers = errors.New("workers must be non-negative")
)
