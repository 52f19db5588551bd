package value_test

import (
	"testing"

	"github.com/brook-lang/brook/value"
)

func TestIntEquality(t *testing.T) {
	t.Parallel()
	if !value.Int(3).IsEqual(value.Int(3)) {
		t.Error("3 should equal 3")
	}
	if value.Int(3).IsEqual(value.Int(4)) {
		t.Error("3 should not equal 4")
	}
	if value.Int(3).IsEqual(value.Bool(true)) {
		t.Error("an int should never equal a bool")
	}
}

func TestTupleEquality(t *testing.T) {
	t.Parallel()
	a := value.Tuple{value.Int(1), value.Str("x")}
	b := value.Tuple{value.Int(1), value.Str("x")}
	c := value.Tuple{value.Int(1), value.Str("y")}
	d := value.Tuple{value.Int(1)}

	if !a.IsEqual(b) {
		t.Error("tuples with equal elements should be equal")
	}
	if a.IsEqual(c) {
		t.Error("tuples differing in one element should not be equal")
	}
	if a.IsEqual(d) {
		t.Error("tuples of different length should not be equal")
	}
}

func TestBoxedNeverEqualsItsContents(t *testing.T) {
	t.Parallel()
	boxed := value.Boxed{Inner: value.Int(5)}
	if boxed.IsEqual(value.Int(5)) {
		t.Error("a boxed value must not equal its unwrapped contents")
	}
	if !boxed.IsEqual(value.Boxed{Inner: value.Int(5)}) {
		t.Error("two boxes around equal values should be equal")
	}
}

func TestErrorIsNeverEqual(t *testing.T) {
	t.Parallel()
	e := value.NewError("boom")
	if e.IsEqual(value.NewError("boom")) {
		t.Error("errors are never equal, even to an identical-looking one")
	}
}

func TestErrorSatisfiesGoError(t *testing.T) {
	t.Parallel()
	sentinel := value.NewError("sentinel message")
	var err error = sentinel
	if err.Error() != "sentinel message" {
		t.Errorf("got %q, want %q", err.Error(), "sentinel message")
	}
}

func TestTypeName(t *testing.T) {
	t.Parallel()
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.Int(1), "int"},
		{value.Bool(true), "bool"},
		{value.Char('a'), "char"},
		{value.Str("s"), "string"},
		{value.Tuple{}, "tuple"},
		{value.Boxed{Inner: value.Int(1)}, "boxed"},
		{value.NewError("e"), "error"},
	}
	for _, c := range cases {
		if got := value.TypeName(c.v); got != c.want {
			t.Errorf("TypeName(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}
