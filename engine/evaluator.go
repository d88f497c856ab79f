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

package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bossql/joinengine/expr"
	"github.com/bossql/joinengine/join"
)

// Evaluator is a stateless join evaluator: it holds no data between
// calls, only the algorithm choice and the lock that serializes
// concurrent callers. A process-wide instance is reached through
// Evaluate; construct your own with New to run a different Algorithm
// side by side with the singleton (cmd/joinctl builds its pipeline
// engines this way).
type Evaluator struct {
	mu        sync.Mutex
	Algorithm join.Algorithm
}

// New builds an Evaluator using alg. An empty alg defers to join.Run's
// default.
func New(alg join.Algorithm) *Evaluator {
	return &Evaluator{Algorithm: alg}
}

var (
	singletonMu sync.Mutex
	singleton   *Evaluator
)

func current() *Evaluator {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton == nil {
		singleton = New(join.HashJoinAlgorithm)
	}
	return singleton
}

// Reset discards the process-wide singleton; the next call to Evaluate
// or SetAlgorithm builds a fresh one.
func Reset() {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	singleton = nil
}

// SetAlgorithm changes the join algorithm used by the process-wide
// singleton.
func SetAlgorithm(alg join.Algorithm) {
	e := current()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Algorithm = alg
}

// Evaluate passes n through the process-wide singleton evaluator. See
// (*Evaluator).Evaluate.
func Evaluate(n expr.Node) expr.Node {
	return current().Evaluate(n)
}

// Evaluate walks n in post-order, replacing every Join node with the
// Table its plan evaluates to. Every other node is rebuilt unchanged.
// Any error encountered — an unknown symbol, a malformed expression, a
// builder inconsistency, or a recovered panic from deep inside an
// algorithm — aborts the whole call and wraps the original input as
// ErrorWhenEvaluatingExpression(n, message). Concurrent callers
// serialize on e's lock; evaluation holds no state across calls.
func (e *Evaluator) Evaluate(n expr.Node) (result expr.Node) {
	e.mu.Lock()
	defer e.mu.Unlock()

	callID := uuid.New()
	jr := &joinRewriter{alg: e.Algorithm, callID: callID}

	defer func() {
		if r := recover(); r != nil {
			result = errorExpr(n, callID, fmt.Sprintf("panic: %v", r))
		}
	}()

	out := expr.Rewrite(jr, n)
	if jr.err != nil {
		return errorExpr(n, callID, jr.err.Error())
	}
	return out
}

// joinRewriter descends into every node until an error is latched and,
// on Rewrite, replaces Join nodes with their evaluated Table. The
// first error encountered is latched in err and short-circuits every
// subsequent Walk and Rewrite call; Evaluate checks err once the walk
// completes.
type joinRewriter struct {
	alg    join.Algorithm
	callID uuid.UUID
	err    error
}

func (r *joinRewriter) Walk(n expr.Node) expr.Rewriter {
	if r.err != nil {
		return nil
	}
	return r
}

func (r *joinRewriter) Rewrite(n expr.Node) expr.Node {
	if r.err != nil {
		return n
	}
	c, ok := n.(*expr.Complex)
	if !ok || c.Head != "Join" {
		return n
	}
	plan, err := join.Extract(c)
	if err != nil {
		r.err = err
		return n
	}
	out, err := join.Run(plan, r.alg)
	if err != nil {
		r.err = err
		return n
	}
	return join.ToExpr(out)
}

func errorExpr(original expr.Node, callID uuid.UUID, message string) expr.Node {
	return expr.Call("ErrorWhenEvaluatingExpression", original,
		expr.Str(fmt.Sprintf("[%s] %s", callID, message)))
}
