package dataset

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// MaxAttributes is the largest attribute count a Dataset accepts.
const MaxAttributes = 1 << 20

// Dataset is an immutable table of binary instances.
// All methods are safe for concurrent use.
type Dataset struct {
	rows          [][]uint8
	numAttributes int

	// columns[j] holds the ids of rows whose column j equals 1.
	// columns[numAttributes] is the label column.
	columns []*roaring.Bitmap
}

// New validates rows and builds a Dataset. Each row must hold numAttributes
// values followed by the class label, all in {0, 1}. The rows are copied.
func New(numAttributes int, rows [][]uint8) (*Dataset, error) {
	if numAttributes < 0 {
		return nil, ErrNegativeAttributes
	}
	if numAttributes > MaxAttributes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyAttributes, numAttributes, MaxAttributes)
	}
	if int64(len(rows)) > math.MaxUint32 {
		return nil, fmt.Errorf("%d rows exceed the row id range", len(rows))
	}

	width := numAttributes + 1
	columns := make([]*roaring.Bitmap, width)
	for j := range columns {
		columns[j] = roaring.New()
	}

	cp := make([][]uint8, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, &ErrRowLength{Row: i, Expected: width, Actual: len(row)}
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				columns[j].Add(uint32(i))
			default:
				return nil, &ErrInvalidValue{Row: i, Column: j, Value: int(v)}
			}
		}
		cp[i] = append([]uint8(nil), row...)
	}

	for _, c := range columns {
		c.RunOptimize()
	}

	return &Dataset{
		rows:          cp,
		numAttributes: numAttributes,
		columns:       columns,
	}, nil
}

// FromInts is like New but accepts int cells, as produced by text parsers
// and tests.
func FromInts(numAttributes int, rows [][]int) (*Dataset, error) {
	conv := make([][]uint8, len(rows))
	for i, row := range rows {
		r := make([]uint8, len(row))
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, &ErrInvalidValue{Row: i, Column: j, Value: v}
			}
			r[j] = uint8(v)
		}
		conv[i] = r
	}
	return New(numAttributes, conv)
}

// MustFromInts is like FromInts but panics on error.
func MustFromInts(numAttributes int, rows [][]int) *Dataset {
	ds, err := FromInts(numAttributes, rows)
	if err != nil {
		panic(err)
	}
	return ds
}

// NumInstances returns the number of rows.
func (d *Dataset) NumInstances() int { return len(d.rows) }

// NumAttributes returns the number of attribute columns (label excluded).
func (d *Dataset) NumAttributes() int { return d.numAttributes }

// Row returns a copy of row i including the trailing label.
func (d *Dataset) Row(i int) []uint8 {
	return append([]uint8(nil), d.rows[i]...)
}

// Value returns the value of column j in row i.
func (d *Dataset) Value(i, j int) uint8 { return d.rows[i][j] }

// Label returns the class label of row i.
func (d *Dataset) Label(i int) uint8 { return d.rows[i][d.numAttributes] }

// Column returns the ids of rows whose attribute j equals 1.
// The returned bitmap is a copy owned by the caller.
func (d *Dataset) Column(j int) *roaring.Bitmap {
	return d.columns[j].Clone()
}

// LabelColumn returns the ids of rows whose class label equals 1.
func (d *Dataset) LabelColumn() *roaring.Bitmap {
	return d.columns[d.numAttributes].Clone()
}

// Matching returns the ids of rows whose column j equals v. Column
// NumAttributes() addresses the label.
func (d *Dataset) Matching(j int, v uint8) *roaring.Bitmap {
	if v == 1 {
		return d.columns[j].Clone()
	}
	return roaring.Flip(d.columns[j], 0, uint64(len(d.rows)))
}

// Count returns the number of instances whose label equals v.
func (d *Dataset) Count(v uint8) int {
	ones := int(d.columns[d.numAttributes].GetCardinality())
	if v == 1 {
		return ones
	}
	return len(d.rows) - ones
}
