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

import "golang.org/x/exp/slices"

// Schema is the column-name sequence of a Table, in column order.
type Schema []string

// ConcatSchemas returns the left-to-right concatenation of schemas,
// which is how a multi-way join's merged schema is defined.
func ConcatSchemas(schemas ...Schema) Schema {
	n := 0
	for _, s := range schemas {
		n += len(s)
	}
	out := make(Schema, 0, n)
	for _, s := range schemas {
		out = append(out, s...)
	}
	return out
}

// Clone returns an independent copy of s.
func (s Schema) Clone() Schema {
	return slices.Clone(s)
}
