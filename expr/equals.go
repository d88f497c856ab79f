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

// Equals reports whether a and b are structurally identical
// expression trees. It is used by tests asserting passthrough
// idempotence and by Rewriter implementations that want to detect a
// no-op rewrite.
func Equals(a, b Node) bool {
	switch av := a.(type) {
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case *Complex:
		bv, ok := b.(*Complex)
		if !ok || av.Head != bv.Head || len(av.Args) != len(bv.Args) || len(av.Spans) != len(bv.Spans) {
			return false
		}
		for i := range av.Args {
			if !Equals(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		for i := range av.Spans {
			if !spanEquals(av.Spans[i], bv.Spans[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func spanEquals(a, b Span) bool {
	switch av := a.(type) {
	case Int64Span:
		bv, ok := b.(Int64Span)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case Float64Span:
		bv, ok := b.(Float64Span)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
