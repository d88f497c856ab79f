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
	"sort"
	"testing"

	"github.com/bossql/joinengine/table"
)

// mkTable builds a table.Table from int64 columns, one per name.
func mkTable(t *testing.T, names []string, cols ...[]int64) table.Table {
	t.Helper()
	tcols := make([]table.Column, len(cols))
	for i, c := range cols {
		tcols[i] = table.NewInt64Column(c)
	}
	tb, err := table.New(names, tcols)
	if err != nil {
		t.Fatalf("mkTable: %v", err)
	}
	return tb
}

// rowStrings renders every row of tb as a sortable string, so two
// tables can be compared as multisets regardless of emission order.
func rowStrings(tb table.Table) []string {
	out := make([]string, tb.RowCount())
	for i := 0; i < tb.RowCount(); i++ {
		out[i] = fmt.Sprint(tb.Row(i))
	}
	sort.Strings(out)
	return out
}

// assertSameMultiset fails t if got and want do not contain the same
// rows, ignoring order.
func assertSameMultiset(t *testing.T, got, want table.Table) {
	t.Helper()
	g, w := rowStrings(got), rowStrings(want)
	if len(g) != len(w) {
		t.Fatalf("row count = %d, want %d\ngot:  %v\nwant: %v", len(g), len(w), g, w)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("row multiset mismatch\ngot:  %v\nwant: %v", g, w)
		}
	}
}
