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

func TestEquals(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Node
		equal bool
	}{
		{"same symbol", Symbol("A"), Symbol("A"), true},
		{"different symbol", Symbol("A"), Symbol("B"), false},
		{"same int", Int(3), Int(3), true},
		{"int vs float", Int(3), Float(3), false},
		{"same complex", Call("Join", Symbol("A")), Call("Join", Symbol("A")), true},
		{"different head", Call("Join", Symbol("A")), Call("Select", Symbol("A")), false},
		{"different arity", Call("Join", Symbol("A")), Call("Join", Symbol("A"), Symbol("B")), false},
		{
			"same span",
			CallSpan("List", Int64Span{1, 2, 3}),
			CallSpan("List", Int64Span{1, 2, 3}),
			true,
		},
		{
			"different span",
			CallSpan("List", Int64Span{1, 2, 3}),
			CallSpan("List", Int64Span{1, 2, 4}),
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equals(c.a, c.b); got != c.equal {
				t.Errorf("Equals(%s, %s) = %v, want %v", ToString(c.a), ToString(c.b), got, c.equal)
			}
		})
	}
}

func TestToString(t *testing.T) {
	n := Call("Join", Call("Table", Symbol("A")), Symbol("B"))
	want := "Join(Table(A), B)"
	if got := ToString(n); got != want {
		t.Errorf("ToString() = %q, want %q", got, want)
	}
}
