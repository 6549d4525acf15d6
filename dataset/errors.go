package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader is returned when the header line cannot be parsed.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrFieldCount is returned when a data line has the wrong number of fields.
	ErrFieldCount = errors.New("wrong field count")

	// ErrTruncated is returned when fewer rows than announced are present.
	ErrTruncated = errors.New("truncated input")

	// ErrTrailingData is returned when more rows than announced are present.
	ErrTrailingData = errors.New("trailing data after last row")

	// ErrNegativeAttributes is returned for a negative attribute count.
	ErrNegativeAttributes = errors.New("number of attributes must be non-negative")

	// ErrTooManyAttributes is returned when the attribute count exceeds MaxAttributes.
	ErrTooManyAttributes = errors.New("too many attributes")
)

// ErrRowLength indicates a row with the wrong number of columns.
type ErrRowLength struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRowLength) Error() string {
	return fmt.Sprintf("row %d: expected %d values, got %d", e.Row, e.Expected, e.Actual)
}

// ErrInvalidValue indicates a cell that is neither 0 nor 1.
type ErrInvalidValue struct {
	Row    int
	Column int
	Value  int
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("row %d column %d: value %d is not binary", e.Row, e.Column, e.Value)
}

// ParseError reports the input line at which parsing failed.
//
// The original underlying error can be accessed via errors.Unwrap.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
