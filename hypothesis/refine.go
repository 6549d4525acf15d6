package hypothesis

// Refiner generates the canonical children of a hypothesis.
type Refiner struct {
	numAttributes int
}

// NewRefiner returns a refiner over attributes [0, numAttributes).
func NewRefiner(numAttributes int) Refiner {
	if numAttributes < 0 {
		numAttributes = 0
	}
	return Refiner{numAttributes: numAttributes}
}

// NumAttributes returns the size of the attribute universe.
func (r Refiner) NumAttributes() int { return r.numAttributes }

// Count returns the number of children of h.
func (r Refiner) Count(h Hypothesis) int {
	return max(r.numAttributes-(h.Last()+1), 0)
}

// Each calls fn for every child of h in ascending order of the appended
// attribute. Iteration stops when fn returns false.
func (r Refiner) Each(h Hypothesis, fn func(child Hypothesis, attr int) bool) {
	for attr := h.Last() + 1; attr < r.numAttributes; attr++ {
		if !fn(h.extend(attr), attr) {
			return
		}
	}
}

// Children returns all children of h. The root yields one singleton per
// attribute; any other hypothesis is extended with every attribute larger
// than its last one.
func (r Refiner) Children(h Hypothesis) []Hypothesis {
	out := make([]Hypothesis, 0, r.Count(h))
	r.Each(h, func(child Hypothesis, _ int) bool {
		out = append(out, child)
		return true
	})
	return out
}
