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
	"fmt"

	"github.com/bossql/joinengine/expr"
)

// UnknownSymbolError is returned by Extract when an Equal predicate
// references a column name that does not appear in any table schema
// accumulated so far (spec error kind 1: fatal during plan extraction).
type UnknownSymbolError struct {
	Symbol expr.Symbol
	At     expr.Node
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown column symbol: %s", e.Symbol)
}

// UnsupportedValueError is returned when a column literal contains a
// value of a type outside the { i64, f64 } union (spec error kind 2).
type UnsupportedValueError struct {
	At expr.Node
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value type in column literal: %s", expr.ToString(e.At))
}

// StructuralError indicates a bug surfaced by the result builder — a
// schema or row-count mismatch that should never happen if the
// extractor and executors uphold their contracts (spec error kind 3).
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return e.Msg }

// MalformedExpressionError is returned when a Table or Join expression
// does not have the shape the extractor expects (e.g. a Join missing
// its Where(Equal(...)) clause).
type MalformedExpressionError struct {
	At  expr.Node
	Msg string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Msg, expr.ToString(e.At))
}
