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

// tableFromExpr parses a Table(Name_0(List(...)), ..., Name_{C-1}(List(...)))
// expression into a table.Table.
func tableFromExpr(e *expr.Complex) (table.Table, error) {
	names := make([]string, 0, len(e.Args))
	cols := make([]table.Column, 0, len(e.Args))
	for _, colExpr := range e.Args {
		colComplex, ok := colExpr.(*expr.Complex)
		if !ok || len(colComplex.Args) != 1 {
			return table.Table{}, &MalformedExpressionError{At: colExpr, Msg: "expected Name(List(...)) column"}
		}
		listExpr, ok := colComplex.Args[0].(*expr.Complex)
		if !ok {
			return table.Table{}, &MalformedExpressionError{At: colComplex, Msg: "expected List(...) argument"}
		}
		col, err := columnFromList(listExpr)
		if err != nil {
			return table.Table{}, err
		}
		names = append(names, colComplex.Head)
		cols = append(cols, col)
	}
	t, err := table.New(names, cols)
	if err != nil {
		return table.Table{}, &StructuralError{Msg: err.Error()}
	}
	return t, nil
}

func columnFromList(list *expr.Complex) (table.Column, error) {
	if len(list.Spans) == 1 {
		switch s := list.Spans[0].(type) {
		case expr.Int64Span:
			return table.NewInt64Column([]int64(s)), nil
		case expr.Float64Span:
			return table.NewFloat64Column([]float64(s)), nil
		}
	}
	var col table.Column
	for _, v := range list.Args {
		switch n := v.(type) {
		case expr.Int:
			col = col.Append(table.Int(int64(n)))
		case expr.Float:
			col = col.Append(table.Float(float64(n)))
		default:
			return table.Column{}, &UnsupportedValueError{At: v}
		}
	}
	return col, nil
}

// ToExpr emits a Table expression from t, using the merged schema
// column order. Empty columns are emitted as empty List() nodes so
// that a zero-row join still reports the correct schema shape. It is
// the public counterpart engine.Evaluate uses to splice a join
// result back into the expression tree it came from.
func ToExpr(t table.Table) *expr.Complex {
	return exprFromTable(t)
}

// exprFromTable emits a Table expression from t, using the merged
// schema column order. Empty columns are emitted as empty List()
// nodes so that a zero-row join still reports the correct schema
// shape.
func exprFromTable(t table.Table) *expr.Complex {
	cols := make([]expr.Node, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = &expr.Complex{Head: t.Names[i], Args: []expr.Node{columnToList(c)}}
	}
	return &expr.Complex{Head: "Table", Args: cols}
}

func columnToList(c table.Column) *expr.Complex {
	if c.Len() == 0 {
		return expr.Call("List")
	}
	if c.Variant == table.Int64 {
		return expr.CallSpan("List", expr.Int64Span(c.I64))
	}
	return expr.CallSpan("List", expr.Float64Span(c.F64))
}
