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

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString renders n as the textual form of the expression language,
// e.g. Join(Table(...), Table(...), Where(Equal(A, B))). It is used for
// error messages, test failure output and cmd/joinctl's printed result;
// it is not a parser round-trip format, since Parse does not read the
// form it gives typed spans.
func ToString(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case nil:
		b.WriteString("null")
	case Symbol:
		b.WriteString(string(v))
	case Int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
	case Str:
		b.WriteString(strconv.Quote(string(v)))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case *Complex:
		b.WriteString(v.Head)
		b.WriteByte('(')
		for i, a := range v.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNode(b, a)
		}
		for i, s := range v.Spans {
			if i > 0 || len(v.Args) > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%v", s)
		}
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "%v", v)
	}
}
