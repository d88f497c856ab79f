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

func TestResultBuilderEmptySourcesHaveCorrectSchema(t *testing.T) {
	a := mkTable(t, []string{"X"}, []int64{})
	b := mkTable(t, []string{"Y"}, []int64{})
	rb := NewResultBuilder([]table.Table{a, b})
	out, err := rb.Emit()
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if out.RowCount() != 0 || out.ColCount() != 2 {
		t.Fatalf("got %d rows, %d cols; want 0, 2", out.RowCount(), out.ColCount())
	}
	if out.Names[0] != "X" || out.Names[1] != "Y" {
		t.Fatalf("Names = %v", out.Names)
	}
}

func TestResultBuilderAppendRowWrongLength(t *testing.T) {
	a := mkTable(t, []string{"X"}, []int64{1})
	rb := NewResultBuilder([]table.Table{a})
	err := rb.AppendRow([]table.Value{table.Int(1), table.Int(2)})
	if _, ok := err.(*StructuralError); !ok {
		t.Fatalf("err = %v, want *StructuralError", err)
	}
}

func TestResultBuilderAppendRowWrongVariant(t *testing.T) {
	a := mkTable(t, []string{"X"}, []int64{1})
	rb := NewResultBuilder([]table.Table{a})
	err := rb.AppendRow([]table.Value{table.Float(1.5)})
	if _, ok := err.(*StructuralError); !ok {
		t.Fatalf("err = %v, want *StructuralError", err)
	}
}

func TestResultBuilderRoundTrip(t *testing.T) {
	a := mkTable(t, []string{"X"}, []int64{1, 2})
	b := mkTable(t, []string{"Y"}, []int64{3, 4})
	rb := NewResultBuilder([]table.Table{a, b})
	if err := rb.AppendRow([]table.Value{table.Int(1), table.Int(3)}); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if err := rb.AppendRow([]table.Value{table.Int(2), table.Int(4)}); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	out, err := rb.Emit()
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	assertSameMultiset(t, out, mkTable(t, []string{"X", "Y"}, []int64{1, 2}, []int64{3, 4}))
}
