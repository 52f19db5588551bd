package main

import (
	"sort"

	"github.com/brook-lang/brook/ast"
	"github.com/brook-lang/brook/value"
)

// samples are small brook programs built directly as ast.Prog values,
// standing in for source text a lexer and parser would otherwise
// produce — both are out of scope for this module.
var samples = map[string]ast.Prog{
	"fib":     fibSample(),
	"tuple":   tupleSample(),
	"delayed": delayedSample(),
	"error":   errorSample(),
}

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fibSample computes fib(10) via a self-referential top-level
// declaration: fib n = if n < 2 then n else fib(n - 1) + fib(n - 2).
func fibSample() ast.Prog {
	fibBody := &ast.IfExpr{
		Cond: &ast.BinaryExpr{Op: "<", Left: &ast.VariableExpr{Name: "n"}, Right: &ast.LiteralExpr{Value: value.Int(2)}},
		Then: &ast.VariableExpr{Name: "n"},
		Else: &ast.BinaryExpr{
			Op: "+",
			Left: &ast.FnAppExpr{
				Func: &ast.VariableExpr{Name: "fib"},
				Arg:  &ast.BinaryExpr{Op: "-", Left: &ast.VariableExpr{Name: "n"}, Right: &ast.LiteralExpr{Value: value.Int(1)}},
			},
			Right: &ast.FnAppExpr{
				Func: &ast.VariableExpr{Name: "fib"},
				Arg:  &ast.BinaryExpr{Op: "-", Left: &ast.VariableExpr{Name: "n"}, Right: &ast.LiteralExpr{Value: value.Int(2)}},
			},
		},
	}
	return &ast.BinaryProg{
		Decls: []ast.Decl{
			{Name: "fib", Expr: &ast.FnExpr{Param: &ast.IdentPattern{Name: "n"}, Body: fibBody}},
		},
		Main: &ast.FnAppExpr{Func: &ast.VariableExpr{Name: "fib"}, Arg: &ast.LiteralExpr{Value: value.Int(10)}},
	}
}

// tupleSample indexes a 3-tuple by function application: 1 applied to
// (10, 20, 30) yields its middle element, 20.
func tupleSample() ast.Prog {
	tuple := &ast.LiteralExpr{Value: value.Tuple{value.Int(10), value.Int(20), value.Int(30)}}
	return &ast.BinaryProg{
		Main: &ast.FnAppExpr{Func: &ast.LiteralExpr{Value: value.Int(1)}, Arg: tuple},
	}
}

// delayedSample exercises forward reference through a delay binding:
// delay a = b in let b = 1 in a + b, which forces a only after b is in
// scope, and must evaluate to 2.
func delayedSample() ast.Prog {
	main := &ast.DelayedExpr{
		Pattern: &ast.IdentPattern{Name: "a"},
		Value:   &ast.VariableExpr{Name: "b"},
		Body: &ast.LetExpr{
			Pattern: &ast.IdentPattern{Name: "b"},
			Value:   &ast.LiteralExpr{Value: value.Int(1)},
			Body: &ast.BinaryExpr{
				Op:   "+",
				Left: &ast.VariableExpr{Name: "a"},
				Right: &ast.VariableExpr{Name: "b"},
			},
		},
	}
	return &ast.BinaryProg{Main: main}
}

// errorSample divides by zero, producing a first-class error value
// rather than crashing the host.
func errorSample() ast.Prog {
	return &ast.BinaryProg{
		Main: &ast.BinaryExpr{
			Op:   "/",
			Left: &ast.LiteralExpr{Value: value.Int(1)},
			Right: &ast.LiteralExpr{Value: value.Int(0)},
		},
	}
}
