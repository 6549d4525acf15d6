package hypothesis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotIncreasing is returned when attribute indices are not strictly increasing.
	ErrNotIncreasing = errors.New("attributes must be strictly increasing")

	// ErrNegativeAttribute is returned for attribute indices below zero.
	ErrNegativeAttribute = errors.New("attribute index must be non-negative")

	// ErrAlreadyScored is the panic value of Scored on a frozen hypothesis.
	ErrAlreadyScored = errors.New("hypothesis already scored")
)

// Hypothesis is a conjunction "a_i = target AND a_j = target AND ...".
//
// The zero value is the unscored root hypothesis.
type Hypothesis struct {
	attrs   []int // never mutated after construction; may be shared
	quality float64
	scored  bool
}

// Root returns the empty hypothesis that matches every instance.
func Root() Hypothesis {
	return Hypothesis{}
}

// New validates attrs and returns an unscored hypothesis owning a copy of them.
func New(attrs ...int) (Hypothesis, error) {
	for i, a := range attrs {
		if a < 0 {
			return Hypothesis{}, fmt.Errorf("%w: %d", ErrNegativeAttribute, a)
		}
		if i > 0 && attrs[i-1] >= a {
			return Hypothesis{}, fmt.Errorf("%w: %v", ErrNotIncreasing, attrs)
		}
	}
	if len(attrs) == 0 {
		return Root(), nil
	}
	cp := make([]int, len(attrs))
	copy(cp, attrs)
	return Hypothesis{attrs: cp}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(attrs ...int) Hypothesis {
	h, err := New(attrs...)
	if err != nil {
		panic(err)
	}
	return h
}

// extend returns a new hypothesis with attr appended. The caller guarantees
// attr > h.Last().
func (h Hypothesis) extend(attr int) Hypothesis {
	attrs := make([]int, len(h.attrs)+1)
	copy(attrs, h.attrs)
	attrs[len(h.attrs)] = attr
	return Hypothesis{attrs: attrs}
}

// Scored returns a frozen copy of h carrying quality q.
// It panics with ErrAlreadyScored if h was scored before.
func (h Hypothesis) Scored(q float64) Hypothesis {
	if h.scored {
		panic(ErrAlreadyScored)
	}
	h.quality = q
	h.scored = true
	return h
}

// Attributes returns a copy of the attribute indices.
func (h Hypothesis) Attributes() []int {
	out := make([]int, len(h.attrs))
	copy(out, h.attrs)
	return out
}

// Len returns the number of attributes.
func (h Hypothesis) Len() int { return len(h.attrs) }

// At returns the i-th attribute index.
func (h Hypothesis) At(i int) int { return h.attrs[i] }

// Last returns the largest attribute index, or -1 for the root.
func (h Hypothesis) Last() int {
	if len(h.attrs) == 0 {
		return -1
	}
	return h.attrs[len(h.attrs)-1]
}

// IsRoot reports whether h is the empty hypothesis.
func (h Hypothesis) IsRoot() bool { return len(h.attrs) == 0 }

// Quality returns the cached quality. It is zero until Scored was called.
func (h Hypothesis) Quality() float64 { return h.quality }

// IsScored reports whether the quality has been attached.
func (h Hypothesis) IsScored() bool { return h.scored }

// Contains reports whether attr is part of the conjunction.
func (h Hypothesis) Contains(attr int) bool {
	for _, a := range h.attrs {
		if a == attr {
			return true
		}
		if a > attr {
			return false
		}
	}
	return false
}

// Key returns a canonical representation of the attribute list, e.g. "0,3,7".
func (h Hypothesis) Key() string {
	var sb strings.Builder
	for i, a := range h.attrs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(a))
	}
	return sb.String()
}

// String implements fmt.Stringer using the report line format.
func (h Hypothesis) String() string {
	var sb strings.Builder
	sb.WriteString("Hypo: attributes: [")
	for i, a := range h.attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(a))
	}
	sb.WriteString("] quality = ")
	sb.WriteString(strconv.FormatFloat(h.quality, 'f', -1, 64))
	return sb.String()
}

// Equal reports whether a and b have the same attributes and quality.
func Equal(a, b Hypothesis) bool {
	return a.quality == b.quality && compareAttrs(a.attrs, b.attrs) == 0
}

// Compare orders hypotheses from worst to best: -1 if a ranks below b,
// +1 if above, 0 if they are indistinguishable.
//
// Higher quality ranks above. On equal quality the lexicographically smaller
// attribute list ranks above, so shorter prefixes win over their refinements.
func Compare(a, b Hypothesis) int {
	switch {
	case a.quality < b.quality:
		return -1
	case a.quality > b.quality:
		return 1
	}
	return -compareAttrs(a.attrs, b.attrs)
}

// Better reports whether a ranks strictly above b.
func Better(a, b Hypothesis) bool {
	return Compare(a, b) > 0
}

func compareAttrs(a, b []int) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
