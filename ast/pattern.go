package ast

import "github.com/brook-lang/brook/value"

// Pattern describes a shape to bind a scrutinee value against.
type Pattern interface {
	patternNode()
}

// IdentPattern unconditionally binds the whole scrutinee to Name.
type IdentPattern struct {
	Name string
}

// WildcardPattern always matches and binds nothing.
type WildcardPattern struct{}

// ValuePattern matches iff the scrutinee is structurally equal to
// Value.
type ValuePattern struct {
	Value value.Value
}

// TuplePattern matches iff the scrutinee is a Tuple of len(Elems) and
// each component matches the corresponding sub-pattern. Bindings
// introduced by one element are visible to the patterns that follow it.
type TuplePattern struct {
	Elems []Pattern
}

func (*IdentPattern) patternNode()    {}
func (*WildcardPattern) patternNode() {}
func (*ValuePattern) patternNode()    {}
func (*TuplePattern) patternNode()    {}
