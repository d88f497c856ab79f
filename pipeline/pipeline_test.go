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

package pipeline

import (
	"testing"

	"github.com/bossql/joinengine/expr"
)

type stubEngine struct {
	fn func(expr.Node) expr.Node
}

func (s stubEngine) Evaluate(n expr.Node) expr.Node { return s.fn(n) }

func TestEvaluateInEnginesChainsLeftToRight(t *testing.T) {
	appendSym := func(suffix string) stubEngine {
		return stubEngine{fn: func(n expr.Node) expr.Node {
			return expr.Symbol(string(n.(expr.Symbol)) + suffix)
		}}
	}
	out := EvaluateInEngines([]Engine{appendSym("1"), appendSym("2")}, expr.Symbol("A"))
	if out != expr.Symbol("A12") {
		t.Fatalf("out = %v, want A12", out)
	}
}

func TestEvaluateInEnginesStopsOnError(t *testing.T) {
	errOut := expr.Call(errorHead, expr.Symbol("A"), expr.Str("boom"))
	calledSecond := false
	first := stubEngine{fn: func(n expr.Node) expr.Node { return errOut }}
	second := stubEngine{fn: func(n expr.Node) expr.Node {
		calledSecond = true
		return n
	}}
	out := EvaluateInEngines([]Engine{first, second}, expr.Symbol("A"))
	if !expr.Equals(out, errOut) {
		t.Fatalf("out = %v, want %v", out, errOut)
	}
	if calledSecond {
		t.Fatalf("second engine should not run after an error")
	}
}
