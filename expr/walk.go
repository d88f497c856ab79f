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

// Visitor is implemented by callers of Walk. Visit is invoked for each
// node encountered; if the returned Visitor w is non-nil, Walk
// recurses into the node's children with w, followed by a final call
// w.Visit(nil).
//
// (see also: go/ast.Visitor)
type Visitor interface {
	Visit(Node) Visitor
}

// Walk traverses an expression tree in depth-first order. node must
// not be nil.
func Walk(v Visitor, n Node) {
	w := v.Visit(n)
	if w == nil {
		return
	}
	if nl, ok := n.(nonleaf); ok {
		nl.walk(w)
	}
	w.Visit(nil)
}
