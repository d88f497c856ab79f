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
	"github.com/bossql/joinengine/expr"
	"github.com/bossql/joinengine/table"
)

// Hop is one pairwise equi-predicate linking two adjacent tables in a
// linearized join plan: hop k constrains Tables[k].Columns[Left] ==
// Tables[k+1].Columns[Right].
type Hop struct {
	Left  int
	Right int
}

// Plan is the linearized form of a left-deep Join expression: an
// ordered list of base tables, the hops linking each adjacent pair,
// and the merged schema (the left-to-right concatenation of every
// table's schema).
type Plan struct {
	Tables []table.Table
	Hops   []Hop
	Schema table.Schema
}

// Extract linearizes a (possibly nested) left-deep Join expression,
// or a bare Table expression, into a Plan. Nesting on the right is
// legal but produces a hop order that simply reflects visit order; the
// three reference executors all assume a strictly left-deep tree.
func Extract(e expr.Node) (*Plan, error) {
	tables, hops, schema, err := extract(e)
	if err != nil {
		return nil, err
	}
	// Schema.Clone gives the caller its own backing array, independent
	// of whatever extract's recursion happened to allocate it from.
	return &Plan{Tables: tables, Hops: hops, Schema: schema.Clone()}, nil
}

func extract(e expr.Node) ([]table.Table, []Hop, table.Schema, error) {
	c, ok := e.(*expr.Complex)
	if !ok {
		return nil, nil, nil, &MalformedExpressionError{At: e, Msg: "expected a Table or Join expression"}
	}
	switch c.Head {
	case "Table":
		t, err := tableFromExpr(c)
		if err != nil {
			return nil, nil, nil, err
		}
		return []table.Table{t}, nil, t.Schema(), nil
	case "Join":
		if len(c.Args) != 3 {
			return nil, nil, nil, &MalformedExpressionError{At: c, Msg: "Join expects exactly 3 arguments"}
		}
		tablesL, hopsL, schL, err := extract(c.Args[0])
		if err != nil {
			return nil, nil, nil, err
		}
		tablesR, hopsR, schR, err := extract(c.Args[1])
		if err != nil {
			return nil, nil, nil, err
		}
		tables := make([]table.Table, 0, len(tablesL)+len(tablesR))
		tables = append(tables, tablesL...)
		tables = append(tables, tablesR...)
		schema := table.ConcatSchemas(schL, schR)

		symA, symB, err := wherePredicate(c.Args[2])
		if err != nil {
			return nil, nil, nil, err
		}
		idxA, err := resolveSymbol(symA, tables)
		if err != nil {
			return nil, nil, nil, err
		}
		idxB, err := resolveSymbol(symB, tables)
		if err != nil {
			return nil, nil, nil, err
		}

		hops := make([]Hop, 0, len(hopsL)+len(hopsR)+1)
		hops = append(hops, hopsL...)
		hops = append(hops, hopsR...)
		hops = append(hops, Hop{Left: idxA, Right: idxB})
		return tables, hops, schema, nil
	default:
		return nil, nil, nil, &MalformedExpressionError{At: c, Msg: "unrecognized join-plan head " + c.Head}
	}
}

// wherePredicate unwraps Where(Equal(symA, symB)) into its two symbol
// operands.
func wherePredicate(e expr.Node) (expr.Symbol, expr.Symbol, error) {
	whereC, ok := e.(*expr.Complex)
	if !ok || whereC.Head != "Where" || len(whereC.Args) != 1 {
		return "", "", &MalformedExpressionError{At: e, Msg: "expected Where(Equal(...))"}
	}
	eqC, ok := whereC.Args[0].(*expr.Complex)
	if !ok || eqC.Head != "Equal" || len(eqC.Args) != 2 {
		return "", "", &MalformedExpressionError{At: whereC, Msg: "expected Equal(symA, symB)"}
	}
	symA, ok := eqC.Args[0].(expr.Symbol)
	if !ok {
		return "", "", &MalformedExpressionError{At: eqC.Args[0], Msg: "expected a symbol"}
	}
	symB, ok := eqC.Args[1].(expr.Symbol)
	if !ok {
		return "", "", &MalformedExpressionError{At: eqC.Args[1], Msg: "expected a symbol"}
	}
	return symA, symB, nil
}

// resolveSymbol scans the schemas of the accumulated tables in order
// and returns the first match's column index within its owning table.
// A symbol that matches no accumulated column is a fatal error. If two
// accumulated tables share a column name, the first one wins — see
// DESIGN.md's Open Questions for why this is left as-is rather than
// treated as an ambiguity error.
func resolveSymbol(sym expr.Symbol, tables []table.Table) (int, error) {
	for _, t := range tables {
		for i, name := range t.Names {
			if name == string(sym) {
				return i, nil
			}
		}
	}
	return 0, &UnknownSymbolError{Symbol: sym}
}

// anyEmpty reports whether any table in the plan has zero rows, which
// short-circuits every join algorithm straight to an empty result with
// the full merged schema.
func (p *Plan) anyEmpty() bool {
	for _, t := range p.Tables {
		if t.RowCount() == 0 {
			return true
		}
	}
	return false
}

// emptyResult produces the zero-row table carrying the plan's merged
// schema, used for the empty-input-propagation invariant.
func (p *Plan) emptyResult() (table.Table, error) {
	return NewResultBuilder(p.Tables).Emit()
}
