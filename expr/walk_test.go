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

import "testing"

type countVisitor struct {
	n int
}

func (c *countVisitor) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	c.n++
	return c
}

func TestWalkCountsEveryNode(t *testing.T) {
	tree := Call("Join", Call("Table", Symbol("A")), Symbol("B"), Int(3))
	c := &countVisitor{}
	Walk(c, tree)
	// Join, Table, A, B, 3 = 5 nodes.
	if c.n != 5 {
		t.Fatalf("Walk visited %d nodes, want 5", c.n)
	}
}

type upperRewriter struct{}

func (upperRewriter) Walk(Node) Rewriter { return upperRewriter{} }
func (upperRewriter) Rewrite(n Node) Node {
	if s, ok := n.(Symbol); ok {
		return Symbol(string(s) + "'")
	}
	return n
}

func TestRewritePreservesHeadAndSpans(t *testing.T) {
	tree := &Complex{
		Head:  "Project",
		Args:  []Node{Symbol("A"), Symbol("B")},
		Spans: []Span{Int64Span{1, 2, 3}},
	}
	got := Rewrite(upperRewriter{}, tree).(*Complex)
	if got.Head != "Project" {
		t.Fatalf("head mutated: %s", got.Head)
	}
	if !Equals(got.Args[0], Symbol("A'")) || !Equals(got.Args[1], Symbol("B'")) {
		t.Fatalf("args not rewritten: %s", ToString(got))
	}
	if !spanEquals(got.Spans[0], Int64Span{1, 2, 3}) {
		t.Fatalf("span mutated: %v", got.Spans[0])
	}
}
