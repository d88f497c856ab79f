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
	"fmt"

	"github.com/bossql/joinengine/table"
)

// ResultBuilder accumulates output tuples column by column, with
// per-column variant dispatch, and emits a Table carrying the merged
// schema. The per-column variant is fixed up front from the source
// tables' own column variants (spec invariant: "the output preserves
// each input's ... variant per column"), so a zero-row join still
// reports the correct schema shape without needing a first row to
// infer it from.
type ResultBuilder struct {
	schema   table.Schema
	variants []table.Variant
	cols     []table.Column
}

// NewResultBuilder builds a ResultBuilder for the merged schema of
// tables, in left-to-right order.
func NewResultBuilder(tables []table.Table) *ResultBuilder {
	var schema table.Schema
	var variants []table.Variant
	for _, t := range tables {
		schema = append(schema, t.Names...)
		for _, c := range t.Columns {
			variants = append(variants, c.Variant)
		}
	}
	cols := make([]table.Column, len(variants))
	for i, v := range variants {
		if v == table.Int64 {
			cols[i] = table.NewInt64Column(nil)
		} else {
			cols[i] = table.NewFloat64Column(nil)
		}
	}
	return &ResultBuilder{schema: schema, variants: variants, cols: cols}
}

// AppendRow pushes one output tuple, one value per merged-schema slot.
func (b *ResultBuilder) AppendRow(row []table.Value) error {
	if len(row) != len(b.cols) {
		return &StructuralError{Msg: fmt.Sprintf("result row has %d values, want %d", len(row), len(b.cols))}
	}
	for i, v := range row {
		if v.Variant != b.variants[i] {
			return &StructuralError{
				Msg: fmt.Sprintf("column %d (%s): mixed variant append of a %s value", i, b.schema[i], v.Variant),
			}
		}
		b.cols[i] = b.cols[i].Append(v)
	}
	return nil
}

// Emit produces the final Table with the merged schema.
func (b *ResultBuilder) Emit() (table.Table, error) {
	return table.New(b.schema, b.cols)
}

// rowAt reads the concatenated output row for a cursor vector: cursors
// must have one entry per table, in plan order.
func rowAt(tables []table.Table, cursors []int) []table.Value {
	row := make([]table.Value, 0, totalCols(tables))
	for k, t := range tables {
		for _, c := range t.Columns {
			row = append(row, c.At(cursors[k]))
		}
	}
	return row
}

func totalCols(tables []table.Table) int {
	n := 0
	for _, t := range tables {
		n += t.ColCount()
	}
	return n
}
