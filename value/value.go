// Package value defines the runtime result type of the brook evaluator:
// the union of primitives, tuples, boxed values, and first-class errors.
// Closures and thunks are not defined here — they need to reference the
// AST and the environment, so they live in package eval, the same way
// this corpus keeps a base object layer free of evaluator concerns and
// layers callables on top of it in a separate package.
package value

// Value is the result of evaluating an expression.
type Value interface {
	// String renders the value the way brook source would write it back.
	String() string

	// IsEqual reports structural equality. Implementations that have no
	// sensible notion of equality (closures, thunks) return false for
	// every operand, including another of their own kind.
	IsEqual(Value) bool
}

// TypeName returns a short name for the dynamic type of v, used in type
// mismatch error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Str:
		return "string"
	case Tuple:
		return "tuple"
	case Boxed:
		return "boxed"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
