// Package environ implements brook's environment: a chain of
// single-binding frames mapping one identifier to one mutable cell,
// linked to a parent frame. Lookup walks from the innermost frame
// toward the root. Frames are ordinary Go pointers, shared by strong
// reference from child frames and closures; package eval additionally
// points to frames and cells weakly (via the standard weak package) to
// break the reference cycles created by mutually-recursive top-level
// declarations and self-referential delayed bindings.
package environ

import (
	"fmt"

	"github.com/brook-lang/brook/value"
)

// Cell is a single mutable binding slot. A cell is written at most
// twice in its lifetime: once when its frame is created (possibly with
// a placeholder error value) and at most once more, by the declaration
// binder or by a Delayed thunk installing itself.
type Cell struct {
	v value.Value
}

// NewCell creates a cell holding v.
func NewCell(v value.Value) *Cell { return &Cell{v: v} }

// Value returns the cell's current content.
func (c *Cell) Value() value.Value { return c.v }

// Set overwrites the cell's content.
func (c *Cell) Set(v value.Value) { c.v = v }

// Frame is one environment record: a name, the cell it is bound to,
// and a link to the enclosing frame. A nil *Frame is the empty, root
// environment.
type Frame struct {
	name   string
	cell   *Cell
	parent *Frame
}

// Empty returns the root environment, which binds nothing.
func Empty() *Frame { return nil }

// AssociateIdent extends parent with a new frame binding name to val.
// This operation is infallible.
func AssociateIdent(name string, val value.Value, parent *Frame) *Frame {
	return &Frame{name: name, cell: NewCell(val), parent: parent}
}

// AssociateCell extends parent with a frame sharing an existing cell,
// used when a caller needs a stable *Cell reference (for weak
// self-references) before the cell's final value is known.
func AssociateCell(name string, cell *Cell, parent *Frame) *Frame {
	return &Frame{name: name, cell: cell, parent: parent}
}

// Name returns the identifier this frame binds.
func (f *Frame) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Cell returns this frame's binding cell.
func (f *Frame) Cell() *Cell {
	if f == nil {
		return nil
	}
	return f.cell
}

// Parent returns the enclosing frame, or nil at the root.
func (f *Frame) Parent() *Frame {
	if f == nil {
		return nil
	}
	return f.parent
}

// Get walks the parent chain starting at env and returns the first
// cell bound to name.
func Get(env *Frame, name string) (*Cell, bool) {
	for f := env; f != nil; f = f.parent {
		if f.name == name {
			return f.cell, true
		}
	}
	return nil, false
}

// String renders a short diagnostic chain, innermost frame first, in
// the style of a stack trace line.
func (f *Frame) String() string {
	if f == nil {
		return "<empty>"
	}
	const maxLinks = 6
	s := fmt.Sprintf("%s=%v", f.name, f.cell.Value())
	n := 1
	for p := f.parent; p != nil && n < maxLinks; p = p.parent {
		s += fmt.Sprintf("<-%s", p.name)
		n++
	}
	if n == maxLinks {
		s += "<-..."
	}
	return s
}
