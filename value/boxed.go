package value

// Boxed wraps a value in a container that is structurally distinct from
// its contents: Boxed(v) is never equal to v, even though it carries v.
type Boxed struct {
	Inner Value
}

func (b Boxed) String() string { return "box(" + b.Inner.String() + ")" }

// IsEqual reports whether other is a Boxed value wrapping an equal inner
// value. A Boxed value is never equal to its unwrapped contents.
func (b Boxed) IsEqual(other Value) bool {
	o, ok := other.(Boxed)
	return ok && b.Inner.IsEqual(o.Inner)
}
