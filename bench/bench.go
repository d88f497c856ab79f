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
	"math/rand"
	"strconv"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/bossql/joinengine/join"
	"github.com/bossql/joinengine/table"
)

// CPUFeatures snapshots the feature flags relevant to interpreting a
// Result: a join core with no SIMD path runs identically regardless of
// these, but they still explain wall-clock variance across machines.
type CPUFeatures struct {
	HasAVX2   bool
	HasAVX512 bool
}

// CurrentCPUFeatures reads the running machine's feature flags.
func CurrentCPUFeatures() CPUFeatures {
	return CPUFeatures{
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512,
	}
}

// Result is one algorithm's timing against one synthetic plan.
type Result struct {
	Algorithm join.Algorithm
	Rows      int
	Elapsed   time.Duration
	CPU       CPUFeatures
}

// GenerateChain builds a synthetic left-deep chain join of tableCount
// tables, each with rowsPerTable rows, with a join key distribution
// that guarantees every adjacent pair has at least one match: table k's
// outgoing key is rowIndex % keySpace, and table k+1's incoming key is
// drawn from the same keySpace, so hop k always has matches without
// forcing a 1:1 correspondence.
func GenerateChain(tableCount, rowsPerTable int, seed int64) *join.Plan {
	rng := rand.New(rand.NewSource(seed))
	keySpace := rowsPerTable / 4
	if keySpace < 1 {
		keySpace = 1
	}

	tables := make([]table.Table, tableCount)
	hops := make([]join.Hop, tableCount-1)
	var schema table.Schema

	for t := 0; t < tableCount; t++ {
		names := []string{colName(t, "out")}
		outCol := make([]int64, rowsPerTable)
		for i := range outCol {
			outCol[i] = int64(i % keySpace)
		}
		cols := [][]int64{outCol}

		if t > 0 {
			names = append(names, colName(t, "in"))
			inCol := make([]int64, rowsPerTable)
			for i := range inCol {
				inCol[i] = int64(rng.Intn(keySpace))
			}
			cols = append(cols, inCol)
			hops[t-1] = join.Hop{Left: 0, Right: len(names) - 1}
		}

		tcols := make([]table.Column, len(cols))
		for i, c := range cols {
			tcols[i] = table.NewInt64Column(c)
		}
		tb, err := table.New(names, tcols)
		if err != nil {
			panic(err)
		}
		tables[t] = tb
		schema = append(schema, names...)
	}

	return &join.Plan{Tables: tables, Hops: hops, Schema: schema}
}

func colName(table int, suffix string) string {
	return "t" + strconv.Itoa(table) + "_" + suffix
}

// Run times each of algs against p once, returning one Result per
// algorithm in the same order.
func Run(p *join.Plan, algs []join.Algorithm) ([]Result, error) {
	cpuFeatures := CurrentCPUFeatures()
	results := make([]Result, 0, len(algs))
	for _, alg := range algs {
		start := time.Now()
		out, err := join.Run(p, alg)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			Algorithm: alg,
			Rows:      out.RowCount(),
			Elapsed:   time.Since(start),
			CPU:       cpuFeatures,
		})
	}
	return results, nil
}
