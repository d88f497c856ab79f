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

import "fmt"

// Table is an ordered sequence of (name, column) pairs. All columns
// share a row count; names are unique within a table.
type Table struct {
	Names   []string
	Columns []Column
}

// New builds a Table from parallel name/column slices, validating the
// row-count invariant.
func New(names []string, cols []Column) (Table, error) {
	if len(names) != len(cols) {
		return Table{}, fmt.Errorf("table: %d names but %d columns", len(names), len(cols))
	}
	rows := -1
	for i, c := range cols {
		if rows == -1 {
			rows = c.Len()
		} else if c.Len() != rows {
			return Table{}, fmt.Errorf("table: column %q has %d rows, want %d", names[i], c.Len(), rows)
		}
	}
	return Table{Names: names, Columns: cols}, nil
}

// RowCount returns the table's row count (0 for a table with no
// columns).
func (t Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// ColCount returns the number of columns.
func (t Table) ColCount() int { return len(t.Columns) }

// Schema returns t's column names in column order.
func (t Table) Schema() Schema {
	s := make(Schema, len(t.Names))
	copy(s, t.Names)
	return s
}

// Row returns the tuple formed by taking index i from each column in
// order.
func (t Table) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Columns[c].At(i)
	}
	return row
}

// Swap exchanges rows i and j across every column, preserving the
// invariant that a row stays intact under a sort.
func (t Table) Swap(i, j int) {
	for c := range t.Columns {
		t.Columns[c].Swap(i, j)
	}
}

// Copy returns a Table backed by freshly allocated column storage; the
// sort-merge join sorts a copy of each relation rather than mutating
// its input in place.
func (t Table) Copy() Table {
	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = c.Copy()
	}
	names := make([]string, len(t.Names))
	copy(names, t.Names)
	return Table{Names: names, Columns: cols}
}
