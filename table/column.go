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

// Column is an ordered sequence of Values of a single variant. Only
// one of I64/F64 is populated, selected by Variant; the other stays
// nil. Materialization dispatches on variant once per column, not
// once per cell.
type Column struct {
	Variant Variant
	I64     []int64
	F64     []float64
}

// NewInt64Column builds a Column from a slice of integers.
func NewInt64Column(vals []int64) Column {
	return Column{Variant: Int64, I64: vals}
}

// NewFloat64Column builds a Column from a slice of floats.
func NewFloat64Column(vals []float64) Column {
	return Column{Variant: Float64, F64: vals}
}

// Len returns the column's row count.
func (c Column) Len() int {
	if c.Variant == Int64 {
		return len(c.I64)
	}
	return len(c.F64)
}

// At returns the value at row i.
func (c Column) At(i int) Value {
	if c.Variant == Int64 {
		return Int(c.I64[i])
	}
	return Float(c.F64[i])
}

// Append returns a new Column with v appended. v must share c's
// variant unless c is empty and untyped (Len()==0 and both slices
// nil), in which case c adopts v's variant.
func (c Column) Append(v Value) Column {
	if c.Len() == 0 && c.I64 == nil && c.F64 == nil {
		c.Variant = v.Variant
	}
	if c.Variant != v.Variant {
		panic("table: mixed variant append into column")
	}
	if c.Variant == Int64 {
		c.I64 = append(c.I64, v.I64)
	} else {
		c.F64 = append(c.F64, v.F64)
	}
	return c
}

// Swap exchanges rows i and j in place.
func (c Column) Swap(i, j int) {
	if c.Variant == Int64 {
		c.I64[i], c.I64[j] = c.I64[j], c.I64[i]
	} else {
		c.F64[i], c.F64[j] = c.F64[j], c.F64[i]
	}
}

// Copy returns an independent copy of c backed by fresh storage.
func (c Column) Copy() Column {
	if c.Variant == Int64 {
		out := make([]int64, len(c.I64))
		copy(out, c.I64)
		return Column{Variant: Int64, I64: out}
	}
	out := make([]float64, len(c.F64))
	copy(out, c.F64)
	return Column{Variant: Float64, F64: out}
}
