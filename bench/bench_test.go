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

package bench

import (
	"testing"

	"github.com/bossql/joinengine/join"
)

func TestGenerateChainShape(t *testing.T) {
	p := GenerateChain(4, 40, 1)
	if len(p.Tables) != 4 {
		t.Fatalf("got %d tables, want 4", len(p.Tables))
	}
	if len(p.Hops) != 3 {
		t.Fatalf("got %d hops, want 3", len(p.Hops))
	}
	for _, tb := range p.Tables {
		if tb.RowCount() != 40 {
			t.Fatalf("RowCount = %d, want 40", tb.RowCount())
		}
	}
}

func TestRunAllAlgorithmsSucceed(t *testing.T) {
	p := GenerateChain(3, 20, 42)
	results, err := Run(p, []join.Algorithm{
		join.NestedLoopAlgorithm, join.SortMergeAlgorithm, join.HashJoinAlgorithm,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Elapsed < 0 {
			t.Fatalf("negative elapsed time for %s", r.Algorithm)
		}
	}
}
