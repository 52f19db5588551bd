package eval

import (
	"weak"

	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/environ"
	"github.com/brook-lang/brook/value"
)

type thunkState uint8

const (
	thunkUnevaluated thunkState = iota
	thunkEvaluating
	thunkForced
)

// Thunk is a memoizing, suspended computation created by a Delayed
// expression or a non-function top-level declaration. It transitions
// Unevaluated -> Evaluating -> Forced exactly once; re-entering
// Evaluating (a cyclic delay) is detected rather than recursing
// forever.
type Thunk struct {
	expr ast.Expr
	env  closureEnv

	// preferContext is true for a plain Delayed thunk: it is only ever
	// reachable from within its own binding's body, so the dynamic
	// environment at the force site is always at least as complete as
	// the environment captured at creation time (a Delayed binding's
	// value-expression may refer to names the body introduces *after*
	// the delay, which is exactly what makes user-level lazy recursion
	// like `delay a = b in let b = 1 in a + b` work: forcing `a` happens
	// from inside the `let`, where `b` is already bound). A top-level
	// declaration thunk is reachable from arbitrary, unrelated call
	// sites, so it must ignore the force site and always evaluate in
	// its own declarations environment instead.
	preferContext bool

	weakSelf weak.Pointer[environ.Cell]

	state  thunkState
	result value.Value
}

// NewDelayedThunk builds the thunk for an ordinary `delay` expression.
// Its environment is held strongly; only its self-reference is weak.
func NewDelayedThunk(expr ast.Expr, self *environ.Cell, env *environ.Frame) *Thunk {
	return &Thunk{
		expr:          expr,
		env:           strongEnv(env),
		preferContext: true,
		weakSelf:      weak.Make(self),
	}
}

// newDeclThunk builds the thunk for a non-function top-level
// declaration. Both its environment and its self-reference are held
// weakly, breaking the cycle between the declarations environment and
// the thunks it contains.
func newDeclThunk(expr ast.Expr, self *environ.Cell, env *environ.Frame) *Thunk {
	return &Thunk{
		expr:     expr,
		env:      weakEnv(env),
		weakSelf: weak.Make(self),
	}
}

func (*Thunk) String() string { return "<thunk>" }

// IsEqual always reports false: thunks are never structurally equal.
func (*Thunk) IsEqual(value.Value) bool { return false }

func (t *Thunk) resolveEnv(ctx *environ.Frame) (*environ.Frame, error) {
	if t.preferContext && ctx != nil {
		return ctx, nil
	}
	return t.env.resolve(ctx)
}
