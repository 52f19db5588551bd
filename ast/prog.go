package ast

// Decl is one top-level declaration: a name bound to an expression.
// The order of a Decl slice is irrelevant to evaluation — the
// declaration binder resolves forward and mutual references regardless
// of position.
type Decl struct {
	Name string
	Expr Expr
}

// Prog is a whole brook program, as handed to the evaluator.
type Prog interface {
	progNode()
}

// BinaryProg is a runnable program: Decls is bound into an environment
// and Main is evaluated within it.
type BinaryProg struct {
	Main  Expr
	Decls []Decl
}

// LibraryProg has no entry point. Evaluating it directly is rejected —
// library declarations are only bound when another component (e.g. an
// import mechanism, out of scope here) requests their environment.
type LibraryProg struct {
	Decls []Decl
}

func (*BinaryProg) progNode()  {}
func (*LibraryProg) progNode() {}
