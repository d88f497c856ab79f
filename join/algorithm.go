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

// Algorithm names one of the three interchangeable join strategies.
// They produce the same observable output on the same input and differ
// only in performance characteristics.
type Algorithm string

const (
	NestedLoopAlgorithm Algorithm = "nested-loop"
	SortMergeAlgorithm  Algorithm = "sort-merge"
	HashJoinAlgorithm   Algorithm = "hash"
)

// Run dispatches p to the named algorithm, defaulting to the hash join
// (the fastest of the three for the common case) when alg is empty.
func Run(p *Plan, alg Algorithm) (table.Table, error) {
	switch alg {
	case NestedLoopAlgorithm:
		return NestedLoop(p)
	case SortMergeAlgorithm:
		return SortMerge(p)
	case HashJoinAlgorithm, "":
		return HashJoin(p)
	default:
		return table.Table{}, &StructuralError{Msg: "unknown join algorithm: " + string(alg)}
	}
}
