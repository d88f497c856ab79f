// Copyright (C) 2024 joinengine contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package expr

import "fmt"

// Node is satisfied by every node in the expression tree: Complex
// expressions and the five atom types.
type Node interface {
	// node marks the type as a Node; it has no behaviour. Descent
	// into children goes through nonleaf, which atoms do not
	// implement.
	node()
}

// nonleaf is implemented by Node types that carry children.
// Only *Complex does; atoms are always leaves.
type nonleaf interface {
	Node
	walk(v Visitor)
	rewrite(r Rewriter) Node
}

// Symbol is an unresolved column or table reference, e.g. the "A" in
// Equal(A, B).
type Symbol string

func (Symbol) node() {}

// Int is a 64-bit signed integer literal.
type Int int64

func (Int) node() {}

// Float is a 64-bit floating point literal.
type Float float64

func (Float) node() {}

// Str is a string literal (used for table names loaded from a URL, etc).
type Str string

func (Str) node() {}

// Bool is a boolean literal.
type Bool bool

func (Bool) node() {}

// Span is a typed, contiguous value buffer that a List may carry
// instead of (or alongside) ordinary argument nodes. Spans are opaque
// to the Walker: they are never recursed into, only copied verbatim
// when a Complex is rebuilt.
type Span interface {
	spanLen() int
	span()
}

// Int64Span is a typed span of integer values.
type Int64Span []int64

func (s Int64Span) span()      {}
func (s Int64Span) spanLen() int { return len(s) }

// Float64Span is a typed span of floating point values.
type Float64Span []float64

func (s Float64Span) span()      {}
func (s Float64Span) spanLen() int { return len(s) }

// Complex is head(args..., spans...): the only recursive node kind in
// this language. Head is never itself a Node — it is a bare operator
// name like "Join", "Table", "Equal", "Where", or a column/table name
// used as the head of a Name(List(...)) or Table(...) term.
type Complex struct {
	Head  string
	Args  []Node
	Spans []Span
}

func (*Complex) node() {}

// Call builds a Complex expression with the given head and dynamic
// arguments and no spans.
func Call(head string, args ...Node) *Complex {
	return &Complex{Head: head, Args: args}
}

// CallSpan builds a Complex expression carrying a single typed span
// and no dynamic arguments, e.g. List(Int64Span{1,2,3}).
func CallSpan(head string, span Span) *Complex {
	return &Complex{Head: head, Spans: []Span{span}}
}

func (c *Complex) walk(v Visitor) {
	for _, a := range c.Args {
		Walk(v, a)
	}
}

func (c *Complex) rewrite(r Rewriter) Node {
	if len(c.Args) == 0 {
		return c
	}
	args := make([]Node, len(c.Args))
	for i, a := range c.Args {
		args[i] = Rewrite(r, a)
	}
	return &Complex{Head: c.Head, Args: args, Spans: c.Spans}
}

// String implements fmt.Stringer for debugging and error messages.
func (c *Complex) String() string { return ToString(c) }

var _ fmt.Stringer = (*Complex)(nil)
