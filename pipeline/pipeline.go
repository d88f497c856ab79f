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

import "github.com/bossql/joinengine/expr"

// Engine is anything that can evaluate one expression into another.
// *engine.Evaluator satisfies it; so does any host-supplied stage that
// runs ahead of or after the join core (a loader-substitution stage, a
// projection pushdown stage, and so on).
type Engine interface {
	Evaluate(expr.Node) expr.Node
}

// errorHead is the head stamped on an expression once any engine in a
// pipeline reports a failure; later engines are never invoked once
// this head is seen.
const errorHead = "ErrorWhenEvaluatingExpression"

// EvaluateInEngines passes e through every engine in engines, in
// order; each engine sees the previous one's output. Evaluation stops
// early the moment an engine's result is an ErrorWhenEvaluatingExpression
// node, and that node is returned as-is.
func EvaluateInEngines(engines []Engine, e expr.Node) expr.Node {
	for _, eng := range engines {
		e = eng.Evaluate(e)
		if isError(e) {
			return e
		}
	}
	return e
}

func isError(n expr.Node) bool {
	c, ok := n.(*expr.Complex)
	return ok && c.Head == errorHead
}
