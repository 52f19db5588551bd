package match_test

import (
	"errors"
	"testing"

	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/environ"
	"github.com/brook-lang/brook/match"
	"github.com/brook-lang/brook/value"
)

func TestIdentPatternAlwaysBinds(t *testing.T) {
	t.Parallel()
	env, err := match.Match(&ast.IdentPattern{Name: "x"}, value.Int(42), environ.Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cell, ok := environ.Get(env, "x")
	if !ok || cell.Value() != value.Int(42) {
		t.Error("x should be bound to 42")
	}
}

func TestWildcardMatchesAndBindsNothing(t *testing.T) {
	t.Parallel()
	parent := environ.Empty()
	env, err := match.Match(&ast.WildcardPattern{}, value.Int(42), parent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env != parent {
		t.Error("a wildcard pattern should not extend the environment")
	}
}

func TestValuePatternRequiresEquality(t *testing.T) {
	t.Parallel()
	if _, err := match.Match(&ast.ValuePattern{Value: value.Int(1)}, value.Int(1), environ.Empty()); err != nil {
		t.Errorf("1 should match the literal pattern 1: %v", err)
	}
	_, err := match.Match(&ast.ValuePattern{Value: value.Int(1)}, value.Int(2), environ.Empty())
	if !errors.Is(err, match.ErrNoMatch) {
		t.Errorf("2 should not match the literal pattern 1, got err=%v", err)
	}
}

func TestTuplePatternBindsLeftToRightVisibility(t *testing.T) {
	t.Parallel()
	// (a, b) matched against (1, 2): each element is matched on top of the
	// frame the previous element produced, so b's frame sits directly on
	// a's and a is visible while b is matched.
	pattern := &ast.TuplePattern{Elems: []ast.Pattern{
		&ast.IdentPattern{Name: "a"},
		&ast.IdentPattern{Name: "b"},
	}}
	scrutinee := value.Tuple{value.Int(1), value.Int(2)}
	env, err := match.Match(pattern, scrutinee, environ.Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cell, ok := environ.Get(env, "a"); !ok || cell.Value() != value.Int(1) {
		t.Error("a should bind to 1")
	}
	if cell, ok := environ.Get(env, "b"); !ok || cell.Value() != value.Int(2) {
		t.Error("b should bind to 2")
	}
	if env.Name() != "b" || env.Parent().Name() != "a" {
		t.Error("b should be bound on top of a's frame, so a is visible while matching b")
	}
}

func TestTuplePatternLengthMismatch(t *testing.T) {
	t.Parallel()
	pattern := &ast.TuplePattern{Elems: []ast.Pattern{&ast.IdentPattern{Name: "a"}}}
	_, err := match.Match(pattern, value.Tuple{value.Int(1), value.Int(2)}, environ.Empty())
	if !errors.Is(err, match.ErrNoMatch) {
		t.Errorf("a length-1 pattern should not match a 2-tuple, got err=%v", err)
	}
}

func TestTuplePatternAgainstNonTuple(t *testing.T) {
	t.Parallel()
	pattern := &ast.TuplePattern{Elems: []ast.Pattern{&ast.IdentPattern{Name: "a"}}}
	_, err := match.Match(pattern, value.Int(5), environ.Empty())
	if !errors.Is(err, match.ErrNoMatch) {
		t.Errorf("a tuple pattern should not match a non-tuple, got err=%v", err)
	}
}
