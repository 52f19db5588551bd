package value

import "strconv"

// Int is a 64-bit signed integer value.
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (i Int) IsEqual(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}
