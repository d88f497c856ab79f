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
	"testing"

	"github.com/bossql/joinengine/table"
)

func TestHashJoinChainJoin(t *testing.T) {
	p := chainPlan(t)
	got, err := HashJoin(p)
	if err != nil {
		t.Fatalf("HashJoin: %v", err)
	}
	want := mkTable(t, []string{"X", "Y", "Z", "W"},
		[]int64{3}, []int64{3}, []int64{200}, []int64{200})
	assertSameMultiset(t, got, want)
}

func TestHashJoinDuplicateKeys(t *testing.T) {
	a := mkTable(t, []string{"X"}, []int64{1, 1, 2})
	b := mkTable(t, []string{"Y", "Z"}, []int64{1, 1, 3}, []int64{10, 20, 30})
	p := &Plan{
		Tables: []table.Table{a, b},
		Hops:   []Hop{{Left: 0, Right: 0}},
		Schema: table.Schema{"X", "Y", "Z"},
	}
	got, err := HashJoin(p)
	if err != nil {
		t.Fatalf("HashJoin: %v", err)
	}
	want := mkTable(t, []string{"X", "Y", "Z"},
		[]int64{1, 1, 1, 1}, []int64{1, 1, 1, 1}, []int64{10, 20, 10, 20})
	assertSameMultiset(t, got, want)
}

func TestHashJoinEmptyInputPropagates(t *testing.T) {
	a := mkTable(t, []string{"X"}, []int64{})
	b := mkTable(t, []string{"Y"}, []int64{1, 2})
	p := &Plan{
		Tables: []table.Table{a, b},
		Hops:   []Hop{{Left: 0, Right: 0}},
		Schema: table.Schema{"X", "Y"},
	}
	got, err := HashJoin(p)
	if err != nil {
		t.Fatalf("HashJoin: %v", err)
	}
	if got.RowCount() != 0 || got.ColCount() != 2 {
		t.Fatalf("got %d rows, %d cols; want 0, 2", got.RowCount(), got.ColCount())
	}
}

func TestHashJoinNoMatches(t *testing.T) {
	a := mkTable(t, []string{"X"}, []int64{1, 2, 3})
	b := mkTable(t, []string{"Y"}, []int64{7, 8, 9})
	p := &Plan{
		Tables: []table.Table{a, b},
		Hops:   []Hop{{Left: 0, Right: 0}},
		Schema: table.Schema{"X", "Y"},
	}
	got, err := HashJoin(p)
	if err != nil {
		t.Fatalf("HashJoin: %v", err)
	}
	if got.RowCount() != 0 {
		t.Fatalf("RowCount = %d, want 0", got.RowCount())
	}
}
