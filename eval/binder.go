package eval

import (
	"t73f.de/r/zero/set"

	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/environ"
)

// Bind installs decls into a fresh environment extending the empty root,
// supporting forward and mutual reference between declarations in any
// order. It runs in two phases, after the two-phase fix-up protocol of
// the reference interpreter's env_from_decls/fill_decl_env:
//
//  1. Allocate one frame and one cell per declaration, in order, each
//     cell initially holding nothing useful — just a stable address
//     every declaration's body can close over by name, regardless of
//     which declarations appear before or after it in decls.
//  2. Now that every name resolves to a cell, fill each cell with the
//     function or thunk its declaration actually describes, closing
//     weakly over the final environment E so that declarations,
//     closures, and thunks do not keep each other alive past the
//     program's use of them.
//
// Declaration binder. Duplicate names at this level shadow rather than
// error: the last declaration with a given name wins at lookup time,
// matching the reference interpreter's unconditional left fold over
// decls. DeclaredNames reports the declared names, duplicates included.
func (e *Evaluator) Bind(decls []ast.Decl) *environ.Frame {
	names := make([]string, 0, len(decls))
	cells := make([]*environ.Cell, len(decls))

	env := environ.Empty()
	for i, d := range decls {
		cell := environ.NewCell(nil)
		cells[i] = cell
		env = environ.AssociateCell(d.Name, cell, env)
		names = append(names, d.Name)
	}

	distinct := set.New(names...).Length()
	e.logDebug("bind: installed top-level declarations", "total", len(decls), "distinct", distinct)
	if distinct != len(decls) {
		e.logDebug("bind: duplicate declaration names shadow, last wins", "total", len(decls), "distinct", distinct)
	}

	final := env
	for i, d := range decls {
		cell := cells[i]
		if fn, ok := d.Expr.(*ast.FnExpr); ok {
			cell.Set(newDeclFunction(fn.Param, fn.Body, final))
			continue
		}
		cell.Set(newDeclThunk(d.Expr, cell, final))
	}

	return final
}

// DeclaredNames returns the names decls would bind, in declaration
// order, including duplicates — the same slice Bind uses to compute its
// distinct-name diagnostic.
func DeclaredNames(decls []ast.Decl) []string {
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Name
	}
	return names
}
