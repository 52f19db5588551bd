// Package eval implements brook's tree-walking evaluator: the Evaluator
// dispatches over ast.Expr nodes against an environ.Frame, Function and
// Thunk give expressions their closure-carrying runtime representation,
// and Bind installs a program's top-level declarations with support for
// forward and mutual reference.
package eval

import (
	"fmt"
	"log/slog"

	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/environ"
	"github.com/brook-lang/brook/match"
	"github.com/brook-lang/brook/value"
)

// maxDepth bounds recursion through Evaluate/Force so that a runaway
// brook program (e.g. unconditional self-application) surfaces as a
// catchable value.Error instead of exhausting the host goroutine stack.
const maxDepth = 100000

// ComputeObserver is notified before each expression is evaluated, in
// the style of sxeval's ComputeObserver: a host embedding the evaluator
// can use it to trace, profile, or implement a debugger without the
// core evaluator knowing anything about that use case.
type ComputeObserver interface {
	WillEvaluate(expr ast.Expr, env *environ.Frame, depth int)
}

// Evaluator holds the cross-cutting state of one evaluation run: a
// logger for diagnostic tracing, an optional ComputeObserver, optional
// Prometheus metrics, and the recursion depth guard. The zero value
// (via NewEvaluator) is ready to use. An Evaluator is not safe for
// concurrent use: Evaluate mutates its depth and call stack, and forcing
// mutates thunks in shared frames, with no locking.
type Evaluator struct {
	log      *slog.Logger
	observer ComputeObserver
	metrics  *Metrics
	depth    int
	stack    []string
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithLogger attaches a structured logger; nil disables logging.
func WithLogger(log *slog.Logger) Option {
	return func(e *Evaluator) { e.log = log }
}

// WithObserver attaches a ComputeObserver.
func WithObserver(obs ComputeObserver) Option {
	return func(e *Evaluator) { e.observer = obs }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// NewEvaluator builds an Evaluator with the given options applied.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates prog. A BinaryProg binds its declarations and evaluates
// Main within them. A LibraryProg has no entry point and always
// produces the "no main" error, matching the reference interpreter.
func (e *Evaluator) Run(prog ast.Prog) value.Value {
	switch p := prog.(type) {
	case *ast.BinaryProg:
		env := e.Bind(p.Decls)
		return e.Evaluate(p.Main, env)
	case *ast.LibraryProg:
		e.logDebug("run: library program has no main", "declCount", len(p.Decls))
		return e.errorf(ErrNoMain, "No 'main' found in file")
	default:
		return e.errorf(ErrTypeMismatch, "unknown program kind %T", prog)
	}
}

// Evaluate evaluates expr against env and returns its result. Errors
// are returned as value.Error, a plain Value, never as a Go panic or
// error return — see SPEC_FULL.md's error handling design.
func (e *Evaluator) Evaluate(expr ast.Expr, env *environ.Frame) value.Value {
	if e.observer != nil {
		e.observer.WillEvaluate(expr, env, e.depth)
	}
	e.metrics.countExpr()

	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxDepth {
		return e.errorf(ErrRecursionLimit, "recursion limit exceeded")
	}

	switch x := expr.(type) {
	case *ast.LiteralExpr:
		return x.Value

	case *ast.VariableExpr:
		return e.evalVariable(x, env)

	case *ast.UnaryExpr:
		operand := e.Evaluate(x.Operand, env)
		return applyUnary(x.Op, operand)

	case *ast.BinaryExpr:
		left := e.Evaluate(x.Left, env)
		if er, ok := value.GetError(left); ok {
			return er
		}
		right := e.Evaluate(x.Right, env)
		return applyBinary(x.Op, left, right)

	case *ast.IfExpr:
		return e.evalIf(x, env)

	case *ast.LetExpr:
		return e.evalLet(x, env)

	case *ast.FnExpr:
		return NewFunction(x.Param, x.Body, env)

	case *ast.FnAppExpr:
		return e.evalFnApp(x, env)

	case *ast.MatchExpr:
		return e.evalMatch(x, env)

	case *ast.DelayedExpr:
		return e.evalDelayed(x, env)

	case *ast.BoxedExpr:
		inner := e.Evaluate(x.Inner, env)
		if er, ok := value.GetError(inner); ok {
			return er
		}
		return value.Boxed{Inner: inner}

	default:
		return e.errorf(ErrTypeMismatch, "unknown expression node %T", expr)
	}
}

func (e *Evaluator) evalVariable(x *ast.VariableExpr, env *environ.Frame) value.Value {
	cell, ok := environ.Get(env, x.Name)
	if !ok {
		return e.errorf(ErrUndeclared, "Variable '%s' is not declared", x.Name)
	}
	v := cell.Value()
	switch forceable := v.(type) {
	case *Thunk:
		return e.Force(forceable, env)
	default:
		return v
	}
}

func (e *Evaluator) evalIf(x *ast.IfExpr, env *environ.Frame) value.Value {
	cond := e.Evaluate(x.Cond, env)
	if er, ok := value.GetError(cond); ok {
		return er
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return e.errorf(ErrTypeMismatch, "If condition must return a boolean")
	}
	if b {
		return e.Evaluate(x.Then, env)
	}
	return e.Evaluate(x.Else, env)
}

func (e *Evaluator) evalLet(x *ast.LetExpr, env *environ.Frame) value.Value {
	v := e.Evaluate(x.Value, env)
	if er, ok := value.GetError(v); ok {
		return er
	}
	extended, err := match.Match(x.Pattern, v, env)
	if err != nil {
		return e.errorf(ErrPatternMismatch, "%s", err.Error())
	}
	return e.Evaluate(x.Body, extended)
}

// evalFnApp implements application. When Func evaluates to an Int, this
// is tuple indexing of Arg rather than a call, per SPEC_FULL.md §4.4.
// A negative literal index is rejected without ever evaluating Arg,
// matching the reference interpreter's short-circuit.
func (e *Evaluator) evalFnApp(x *ast.FnAppExpr, env *environ.Frame) value.Value {
	fn := e.Evaluate(x.Func, env)
	if er, ok := value.GetError(fn); ok {
		return er
	}

	if idx, ok := fn.(value.Int); ok {
		if idx < 0 {
			return e.errorf(ErrNegativeIndex, "Cannot have a negative index of a tuple")
		}
		arg := e.Evaluate(x.Arg, env)
		if er, ok := value.GetError(arg); ok {
			return er
		}
		tup, ok := arg.(value.Tuple)
		if !ok {
			return e.errorf(ErrTypeMismatch, "Can't index type '%s'", value.TypeName(arg))
		}
		if int(idx) >= len(tup) {
			return e.errorf(ErrIndexRange, "Tuple index %d out of range for tuple of length %d", idx, len(tup))
		}
		return tup[idx]
	}

	f, ok := fn.(*Function)
	if !ok {
		return e.errorf(ErrTypeMismatch, "Can't apply argument to type '%s'", value.TypeName(fn))
	}
	arg := e.Evaluate(x.Arg, env)
	if er, ok := value.GetError(arg); ok {
		return er
	}
	return e.apply(f, arg, env)
}

func (e *Evaluator) apply(f *Function, arg value.Value, callerEnv *environ.Frame) value.Value {
	closureEnv, err := f.resolveEnv(callerEnv)
	if err != nil {
		return e.errorf(ErrUnboundClosure, "%s", err.Error())
	}
	bodyEnv, matchErr := match.Match(f.Param, arg, closureEnv)
	if matchErr != nil {
		return e.errorf(ErrPatternMismatch, "%s", matchErr.Error())
	}
	e.stack = append(e.stack, "<function>")
	defer func() { e.stack = e.stack[:len(e.stack)-1] }()
	return e.Evaluate(f.Body, bodyEnv)
}

func (e *Evaluator) evalMatch(x *ast.MatchExpr, env *environ.Frame) value.Value {
	v := e.Evaluate(x.Scrutinee, env)
	if er, ok := value.GetError(v); ok {
		return er
	}
	for _, arm := range x.Arms {
		extended, err := match.Match(arm.Pattern, v, env)
		if err == nil {
			return e.Evaluate(arm.Body, extended)
		}
	}
	return e.errorf(ErrNoMatchingArm, "Value didn't match any patterns")
}

// evalDelayed implements `delay`: a placeholder cell is created first
// so the thunk can hold a weak self-reference, the thunk is installed
// into that cell, and Body is evaluated in an environment where
// Pattern's name resolves to the thunk. Only an identifier pattern is
// accepted; the reference AST never produces any other shape here.
func (e *Evaluator) evalDelayed(x *ast.DelayedExpr, env *environ.Frame) value.Value {
	ident, ok := x.Pattern.(*ast.IdentPattern)
	if !ok {
		return e.errorf(ErrDelayedPattern, "delay requires an identifier pattern")
	}

	cell := environ.NewCell(nil)
	bodyEnv := environ.AssociateCell(ident.Name, cell, env)
	thunk := NewDelayedThunk(x.Value, cell, bodyEnv)
	cell.Set(thunk)

	return e.Evaluate(x.Body, bodyEnv)
}

// Force resolves a thunk to its value, memoizing the result. ctx is the
// environment active at the force site, used by plain Delayed thunks
// (see Thunk.resolveEnv) in preference to their own captured
// environment. A thunk observed mid-force is a cyclic delay.
func (e *Evaluator) Force(t *Thunk, ctx *environ.Frame) value.Value {
	switch t.state {
	case thunkForced:
		e.metrics.countThunkForce("hit")
		return t.result
	case thunkEvaluating:
		e.metrics.countThunkForce("cycle")
		return e.errorf(ErrCyclicDelay, "cyclic use of delayed value")
	}

	e.metrics.countThunkForce("miss")
	t.state = thunkEvaluating
	env, err := t.resolveEnv(ctx)
	if err != nil {
		t.result = e.errorf(ErrUnboundClosure, "%s", err.Error())
		t.state = thunkForced
		return t.result
	}
	result := e.Evaluate(t.expr, env)
	t.result = result
	t.state = thunkForced
	return result
}

func (e *Evaluator) logDebug(msg string, args ...any) {
	if e.log != nil {
		e.log.Debug(msg, args...)
	}
}

// CallStack returns one entry per function call currently in progress,
// outermost first, in the style of sxeval's call-stack tracing. Closures
// carry no name, so every entry is "<function>". Entries are popped as
// calls return, so the stack is empty once Evaluate has returned; a host
// reads it during evaluation, e.g. from a ComputeObserver.
func (e *Evaluator) CallStack() []string {
	stack := make([]string, len(e.stack))
	copy(stack, e.stack)
	return stack
}

// errorf builds a value.Error wrapping sentinel, counts it against
// metrics by the sentinel's message, and logs it at debug level along
// with the current call stack depth.
func (e *Evaluator) errorf(sentinel error, format string, args ...any) value.Error {
	msg := fmt.Sprintf(format, args...)
	e.metrics.countError(sentinel.Error())
	e.logDebug("evaluation error", "kind", sentinel.Error(), "message", msg, "callDepth", len(e.stack))
	return value.Wrap(msg, sentinel)
}
