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

// Command joinbench generates a synthetic chain join and times the
// three join algorithms against it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bossql/joinengine/bench"
	"github.com/bossql/joinengine/join"
)

var (
	dashtables int
	dashrows   int
	dashseed   int64
)

func main() {
	flag.IntVar(&dashtables, "tables", 4, "number of tables in the synthetic chain join")
	flag.IntVar(&dashrows, "rows", 10000, "rows per table")
	flag.Int64Var(&dashseed, "seed", 1, "random seed for synthetic data generation")
	flag.Parse()

	if dashtables < 1 {
		exitf("joinbench: -tables must be >= 1")
	}

	p := bench.GenerateChain(dashtables, dashrows, dashseed)
	results, err := bench.Run(p, []join.Algorithm{
		join.NestedLoopAlgorithm, join.SortMergeAlgorithm, join.HashJoinAlgorithm,
	})
	if err != nil {
		exit(err)
	}

	fmt.Printf("%d tables x %d rows (AVX2=%v AVX512F=%v)\n",
		dashtables, dashrows, results[0].CPU.HasAVX2, results[0].CPU.HasAVX512)
	for _, r := range results {
		fmt.Printf("  %-12s %8d rows  %v\n", r.Algorithm, r.Rows, r.Elapsed)
	}
}

func exitf(f string, args ...any) {
	exit(fmt.Errorf(f, args...))
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
