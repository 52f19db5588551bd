package value

import "strings"

// Tuple is a fixed-length, ordered sequence of values. Indexing a Tuple
// by integer application is handled in package eval, not here — this
// type only carries the data and structural equality.
type Tuple []Value

func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, elem := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// IsEqual reports whether other is a Tuple of the same length whose
// elements are pairwise equal.
func (t Tuple) IsEqual(other Value) bool {
	o, ok := other.(Tuple)
	if !ok || len(t) != len(o) {
		return false
	}
	for i, elem := range t {
		if !elem.IsEqual(o[i]) {
			return false
		}
	}
	return true
}
