// Package match implements brook's pattern matcher: given an
// ast.Pattern and a value.Value, it either extends a parent
// *environ.Frame with the pattern's bindings or reports a non-match.
package match

import (
	"errors"
	"fmt"

	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/environ"
	"github.com/brook-lang/brook/value"
)

// ErrNoMatch is returned (optionally wrapped with more detail) when a
// pattern fails to match a value. Callers turn it into whatever
// value.Error the surrounding construct requires.
var ErrNoMatch = errors.New("pattern did not match value")

// Match attempts to bind pattern against v, extending parent. On
// success it returns the extended frame. On failure it returns parent
// unchanged and an error wrapping ErrNoMatch; for a pattern type it does
// not know, the error does not wrap ErrNoMatch.
func Match(pattern ast.Pattern, v value.Value, parent *environ.Frame) (*environ.Frame, error) {
	switch p := pattern.(type) {
	case *ast.IdentPattern:
		return environ.AssociateIdent(p.Name, v, parent), nil

	case *ast.WildcardPattern:
		return parent, nil

	case *ast.ValuePattern:
		if v.IsEqual(p.Value) {
			return parent, nil
		}
		return parent, fmt.Errorf("%w: expected %v, got %v", ErrNoMatch, p.Value, v)

	case *ast.TuplePattern:
		tup, ok := v.(value.Tuple)
		if !ok {
			return parent, fmt.Errorf("%w: expected a tuple, got %s", ErrNoMatch, value.TypeName(v))
		}
		if len(tup) != len(p.Elems) {
			return parent, fmt.Errorf("%w: tuple of length %d does not match pattern of length %d",
				ErrNoMatch, len(tup), len(p.Elems))
		}
		env := parent
		for i, elemPattern := range p.Elems {
			var err error
			env, err = Match(elemPattern, tup[i], env)
			if err != nil {
				return parent, err
			}
		}
		return env, nil

	default:
		return parent, fmt.Errorf("match: unknown pattern type %T", pattern)
	}
}
