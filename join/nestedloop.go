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

package join

import "github.com/bossql/joinengine/table"

// NestedLoop evaluates a join plan with a cursor vector and
// lexicographic advancement, emitting a row whenever every adjacent
// equi-predicate holds. It is the simplest of the three strategies and
// the easiest to prove correct; the other two exist purely for
// performance.
func NestedLoop(p *Plan) (table.Table, error) {
	n := len(p.Tables)
	if n == 0 {
		return table.Table{}, &StructuralError{Msg: "join plan has no tables"}
	}
	if n == 1 {
		return p.Tables[0], nil
	}
	if p.anyEmpty() {
		return p.emptyResult()
	}

	b := NewResultBuilder(p.Tables)
	cursors := make([]int, n)

	overflow := func() {
		for i := n - 1; i >= 1; i-- {
			if cursors[i] >= p.Tables[i].RowCount() {
				cursors[i] = 0
				cursors[i-1]++
			}
		}
	}

	for cursors[0] < p.Tables[0].RowCount() {
		match := true
		for i := 1; match && i < n; i++ {
			hop := p.Hops[i-1]
			lv := p.Tables[i-1].Columns[hop.Left].At(cursors[i-1])
			rv := p.Tables[i].Columns[hop.Right].At(cursors[i])
			if !lv.Equal(rv) {
				match = false
				cursors[i]++
				for j := i + 1; j < n; j++ {
					cursors[j] = 0
				}
			}
		}
		if match {
			if err := b.AppendRow(rowAt(p.Tables, cursors)); err != nil {
				return table.Table{}, err
			}
			cursors[n-1]++
		}
		overflow()
	}
	return b.Emit()
}
