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

// Package sort provides the row-preserving comparison sort used by the
// sort-merge join. It is a small, hand-rolled counterpart to
// golang.org/x/exp/slices.Sort: that generic sort only knows how to
// permute a single slice, whereas ByColumn must move every column of a
// table in lockstep with the sort key.
package sort

import "github.com/bossql/joinengine/table"

// ByColumn sorts t in place in ascending order by column key. The sort
// is row-preserving: every other column moves with the key. It need
// not be stable; the join algorithms that call it handle duplicate
// runs explicitly.
//
// The implementation is Hoare-partition quicksort with a middle-index
// pivot, chosen for consistency with the rest of this engine's
// reference algorithms rather than for its (already good) average-case
// performance.
func ByColumn(t table.Table, key int) {
	quicksort(t, key, 0, t.RowCount()-1)
}

func quicksort(t table.Table, key, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(t, key, lo, hi)
	quicksort(t, key, lo, p)
	quicksort(t, key, p+1, hi)
}

func partition(t table.Table, key, lo, hi int) int {
	pivot := t.Columns[key].At(lo + (hi-lo)/2)
	i, j := lo-1, hi+1
	for {
		for {
			i++
			if !t.Columns[key].At(i).Less(pivot) {
				break
			}
		}
		for {
			j--
			if !pivot.Less(t.Columns[key].At(j)) {
				break
			}
		}
		if i >= j {
			return j
		}
		t.Swap(i, j)
	}
}

// IsSortedByColumn reports whether t is already sorted ascending by
// column key; it exists for tests and assertions, not the hot path.
func IsSortedByColumn(t table.Table, key int) bool {
	col := t.Columns[key]
	for i := 1; i < col.Len(); i++ {
		if col.At(i).Less(col.At(i - 1)) {
			return false
		}
	}
	return true
}
