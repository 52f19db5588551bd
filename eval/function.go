package eval

import (
	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/environ"
	"github.com/brook-lang/brook/value"
)

// Function is a closure: a single-parameter function paired with the
// environment it was created in. Multi-argument functions are curried
// chains of Function values, one per ast.FnExpr.
//
// Function lives in package eval, not package value, because it needs
// to reference ast.Expr and environ.Frame; value stays free of both.
type Function struct {
	Param ast.Pattern
	Body  ast.Expr
	env   closureEnv
}

// NewFunction builds an ordinary closure with a strongly held
// environment, as produced by evaluating an ast.FnExpr.
func NewFunction(param ast.Pattern, body ast.Expr, env *environ.Frame) *Function {
	return &Function{Param: param, Body: body, env: strongEnv(env)}
}

// newDeclFunction builds a closure for a top-level function
// declaration, whose environment is held weakly so that the
// declarations environment and the functions it contains do not form
// a strong reference cycle that outlives the program.
func newDeclFunction(param ast.Pattern, body ast.Expr, env *environ.Frame) *Function {
	return &Function{Param: param, Body: body, env: weakEnv(env)}
}

func (*Function) String() string { return "<function>" }

// IsEqual always reports false: functions are never structurally equal,
// not even to themselves by value.
func (*Function) IsEqual(value.Value) bool { return false }

// resolveEnv returns the environment this closure should run its body
// in, given ctx, the environment active where the closure is being
// called from (used only as a fallback if the closure's own weakly
// held environment has somehow expired).
func (f *Function) resolveEnv(ctx *environ.Frame) (*environ.Frame, error) {
	return f.env.resolve(ctx)
}
