package value

import "strconv"

// Bool is a boolean value.
type Bool bool

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (b Bool) IsEqual(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}
