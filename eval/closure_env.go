package eval

import (
	"weak"

	"github.com/brook-lang/brook/environ"
)

// closureEnv is the environment a Function or Thunk captured at
// creation time. It is either a strong *environ.Frame reference
// (ordinary closures, and plain Delayed bindings) or a
// weak.Pointer[environ.Frame] (top-level declaration functions and
// thunks, whose environment would otherwise form a reference cycle
// with the values it contains — see eval.Bind).
type closureEnv struct {
	strong *environ.Frame
	weak   weak.Pointer[environ.Frame]
	isWeak bool
}

func strongEnv(env *environ.Frame) closureEnv {
	return closureEnv{strong: env}
}

func weakEnv(env *environ.Frame) closureEnv {
	return closureEnv{weak: weak.Make(env), isWeak: true}
}

// own returns the captured environment, promoting the weak reference
// if this closureEnv holds one. ok is false only when a weak target
// has been garbage collected, which cannot happen while the owning
// declarations environment is still reachable from the running program.
func (ce closureEnv) own() (*environ.Frame, bool) {
	if !ce.isWeak {
		return ce.strong, true
	}
	env := ce.weak.Value()
	return env, env != nil
}

// resolve returns the environment to evaluate in, falling back to ctx
// when the captured environment is an expired weak reference.
func (ce closureEnv) resolve(ctx *environ.Frame) (*environ.Frame, error) {
	if env, ok := ce.own(); ok {
		return env, nil
	}
	if ctx != nil {
		return ctx, nil
	}
	return nil, ErrUnboundClosure
}
