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

package table

import "fmt"

// Variant identifies which member of the Value union is populated.
type Variant uint8

const (
	// Int64 values carry I64.
	Int64 Variant = iota
	// Float64 values carry F64.
	Float64
)

func (v Variant) String() string {
	switch v {
	case Int64:
		return "i64"
	case Float64:
		return "f64"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Value is the tagged union { i64, f64 } that every column cell holds.
// Equality and ordering are defined only between values of the same
// variant; comparing across variants is a programmer error and panics,
// since it can only happen if the Column/Table invariants (uniform
// variant per column) have already been violated upstream.
type Value struct {
	Variant Variant
	I64     int64
	F64     float64
}

// Int builds an Int64 value.
func Int(v int64) Value { return Value{Variant: Int64, I64: v} }

// Float builds a Float64 value.
func Float(v float64) Value { return Value{Variant: Float64, F64: v} }

func (v Value) mustSameVariant(o Value) {
	if v.Variant != o.Variant {
		panic(fmt.Sprintf("table: cannot compare %s value with %s value", v.Variant, o.Variant))
	}
}

// Equal reports whether v and o hold the same variant and value.
func (v Value) Equal(o Value) bool {
	v.mustSameVariant(o)
	switch v.Variant {
	case Int64:
		return v.I64 == o.I64
	default:
		return v.F64 == o.F64
	}
}

// Less reports whether v sorts strictly before o under the variant's
// native ordering.
func (v Value) Less(o Value) bool {
	v.mustSameVariant(o)
	switch v.Variant {
	case Int64:
		return v.I64 < o.I64
	default:
		return v.F64 < o.F64
	}
}

// Greater reports whether v sorts strictly after o.
func (v Value) Greater(o Value) bool {
	return o.Less(v)
}

func (v Value) String() string {
	switch v.Variant {
	case Int64:
		return fmt.Sprintf("%d", v.I64)
	default:
		return fmt.Sprintf("%g", v.F64)
	}
}
