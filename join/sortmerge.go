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

import (
	isort "github.com/bossql/joinengine/internal/sort"
	"github.com/bossql/joinengine/table"
)

// SortMerge evaluates a left-deep join plan as a pipeline of two-way
// sort-merge joins: after each hop, the accumulated left relation is
// merged with the next base table on that hop's predicate. Output is
// emitted in non-descending order of the first hop's left key.
func SortMerge(p *Plan) (table.Table, error) {
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

	left := p.Tables[0].Copy()
	columnOffset := 0
	for k := 0; k < n-1; k++ {
		hop := p.Hops[k]
		li := hop.Left + columnOffset
		ri := hop.Right

		// The width of the accumulator as it stands before this
		// hop's merge is exactly the offset at which the newly
		// introduced right-hand table's local column indices land
		// once it becomes part of the (larger) next accumulator —
		// so it is what columnOffset must become for the next hop.
		preMergeWidth := left.ColCount()

		right := p.Tables[k+1].Copy()
		isort.ByColumn(left, li)
		isort.ByColumn(right, ri)

		merged, err := mergeSorted(left, right, li, ri)
		if err != nil {
			return table.Table{}, err
		}
		left = merged
		columnOffset = preMergeWidth
	}
	// Each hop re-sorts the accumulator by its own key, so a chain of
	// three or more tables is re-sorted once more by the first hop's
	// left key (table 0 sits at offset 0 of the output).
	isort.ByColumn(left, p.Hops[0].Left)
	return left, nil
}

// mergeSorted performs the two-pointer merge of two tables already
// sorted ascending on their respective join columns, materializing the
// full cartesian product of each side's maximal duplicate-key run.
func mergeSorted(left, right table.Table, li, ri int) (table.Table, error) {
	b := NewResultBuilder([]table.Table{left, right})
	l, r := 0, 0
	for l < left.RowCount() && r < right.RowCount() {
		lv := left.Columns[li].At(l)
		rv := right.Columns[ri].At(r)
		switch {
		case lv.Greater(rv):
			r++
		case rv.Greater(lv):
			l++
		default:
			lEnd := l
			for lEnd < left.RowCount() && left.Columns[li].At(lEnd).Equal(lv) {
				lEnd++
			}
			rEnd := r
			for rEnd < right.RowCount() && right.Columns[ri].At(rEnd).Equal(rv) {
				rEnd++
			}
			for a := l; a < lEnd; a++ {
				leftRow := left.Row(a)
				for c := r; c < rEnd; c++ {
					row := append(append(make([]table.Value, 0, len(leftRow)+right.ColCount()), leftRow...), right.Row(c)...)
					if err := b.AppendRow(row); err != nil {
						return table.Table{}, err
					}
				}
			}
			l, r = lEnd, rEnd
		}
	}
	return b.Emit()
}
