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

// bucket is one open-addressed slot of a hashTable: empty until a key
// is first inserted into it, after which it accumulates every row
// index that shares that key.
type bucket struct {
	used bool
	key  table.Value
	rows []int
}

// hashTable is a build-side index keyed by one column's values, with
// open addressing and linear probing. Capacity is at least twice the
// number of rows hashed into it, per spec — the load factor never
// exceeds one half.
type hashTable struct {
	buckets []bucket
}

func buildHashTable(col table.Column) *hashTable {
	n := col.Len()
	capacity := 2 * n
	if capacity == 0 {
		capacity = 1
	}
	h := &hashTable{buckets: make([]bucket, capacity)}
	for i := 0; i < n; i++ {
		v := col.At(i)
		idx := h.slotFor(v)
		h.buckets[idx].used = true
		h.buckets[idx].key = v
		h.buckets[idx].rows = append(h.buckets[idx].rows, i)
	}
	return h
}

// slotFor finds the bucket that already holds key v, or the first free
// slot on its probe sequence if v has not been inserted yet.
func (h *hashTable) slotFor(v table.Value) int {
	idx := int(table.HashValue(v) % uint64(len(h.buckets)))
	for h.buckets[idx].used && !h.buckets[idx].key.Equal(v) {
		idx = (idx + 1) % len(h.buckets)
	}
	return idx
}

// probe returns the row indices stored under key v, or nil if v was
// never inserted.
func (h *hashTable) probe(v table.Value) []int {
	idx := h.slotFor(v)
	if !h.buckets[idx].used {
		return nil
	}
	return h.buckets[idx].rows
}

// indexTuple is one partial or complete row-index tuple accumulated
// while probing backward through the hop chain: tuple[0] corresponds
// to the table at level level, tuple[1] to level+1, and so on through
// the last table.
type indexTuple struct {
	level int
	rows  []int
}

// HashJoin builds one hash table per non-terminal table, keyed on its
// outgoing join column, then probes from the last table backward,
// accumulating row-index tuples across every hop before materializing
// the cartesian product of matching indices for each probe row.
func HashJoin(p *Plan) (table.Table, error) {
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

	hashTables := make([]*hashTable, n-1)
	for c := 0; c < n-1; c++ {
		hashTables[c] = buildHashTable(p.Tables[c].Columns[p.Hops[c].Left])
	}

	b := NewResultBuilder(p.Tables)
	last := p.Tables[n-1]
	for i := 0; i < last.RowCount(); i++ {
		tuples := []indexTuple{{level: n - 1, rows: []int{i}}}
		for j := n - 2; j >= 0; j-- {
			var next []indexTuple
			for _, t := range tuples {
				probeVal := p.Tables[j+1].Columns[p.Hops[j].Right].At(t.rows[0])
				matches := hashTables[j].probe(probeVal)
				for _, cj := range matches {
					extended := make([]int, 0, len(t.rows)+1)
					extended = append(extended, cj)
					extended = append(extended, t.rows...)
					next = append(next, indexTuple{level: j, rows: extended})
				}
			}
			tuples = next
			if len(tuples) == 0 {
				break
			}
		}
		for _, t := range tuples {
			if t.level != 0 || len(t.rows) != n {
				continue
			}
			if err := b.AppendRow(rowAt(p.Tables, t.rows)); err != nil {
				return table.Table{}, err
			}
		}
	}
	return b.Emit()
}
