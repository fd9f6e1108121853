package filter

// Range bounds a column between an optional lower and upper value. Both
// bounds are exclusive. A Range with neither bound set is "no constraint"
// and contributes nothing to a filter.
type Range struct {
	Lower *string
	Upper *string
}

// NewRange builds a Range from optional bounds. Pass nil for an open side.
func NewRange(lower, upper *string) Range {
	return Range{Lower: lower, Upper: upper}
}

// IsEmpty reports whether the range carries no bound at all.
func (r Range) IsEmpty() bool {
	return r.Lower == nil && r.Upper == nil
}

// Set is an optional collection of discrete values for membership tests.
// Duplicates collapse; enumeration keeps first-seen order so generated
// placeholders stay aligned with their parameters. A nil *Set means the
// criterion was not supplied at all.
type Set struct {
	elems []string
}

// NewSet deduplicates values into a Set. A nil input yields a nil Set,
// which every filter operation treats as "no constraint".
func NewSet(values []string) *Set {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	elems := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		elems = append(elems, v)
	}
	return &Set{elems: elems}
}

// Len returns the cardinality of the set. A nil set has length zero.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// Values returns the set's elements in enumeration order.
func (s *Set) Values() []string {
	if s == nil {
		return nil
	}
	return s.elems
}

// One returns the single element of a degenerate set.
func (s *Set) One() (string, bool) {
	if s.Len() == 0 {
		return "", false
	}
	return s.elems[0], true
}
