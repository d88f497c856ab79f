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

package table

import "testing"

func TestValueOrdering(t *testing.T) {
	if !Int(1).Less(Int(2)) {
		t.Fatal("1 should be less than 2")
	}
	if Int(2).Less(Int(1)) {
		t.Fatal("2 should not be less than 1")
	}
	if !Float(1.5).Equal(Float(1.5)) {
		t.Fatal("1.5 should equal 1.5")
	}
}

func TestValueCrossVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic comparing i64 with f64")
		}
	}()
	Int(1).Equal(Float(1))
}

func TestColumnAppendAdoptsVariant(t *testing.T) {
	var c Column
	c = c.Append(Int(1))
	c = c.Append(Int(2))
	if c.Variant != Int64 || c.Len() != 2 {
		t.Fatalf("got %+v", c)
	}
	if !c.At(0).Equal(Int(1)) || !c.At(1).Equal(Int(2)) {
		t.Fatalf("wrong values: %+v", c)
	}
}

func TestTableSwapPreservesRows(t *testing.T) {
	tbl, err := New([]string{"A", "B"}, []Column{
		NewInt64Column([]int64{1, 2, 3}),
		NewInt64Column([]int64{10, 20, 30}),
	})
	if err != nil {
		t.Fatal(err)
	}
	tbl.Swap(0, 2)
	want := [][2]int64{{3, 30}, {2, 20}, {1, 10}}
	for i, w := range want {
		row := tbl.Row(i)
		if row[0].I64 != w[0] || row[1].I64 != w[1] {
			t.Fatalf("row %d = %v, want %v", i, row, w)
		}
	}
}
