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

// Package expr implements the tree-structured expression language that
// carries queries through a pipeline of evaluation engines.
//
// A Node is either a Complex expression (a head plus dynamic argument
// nodes and opaque typed spans) or one of the atom types (Symbol, Int,
// Float, Str, Bool). The critical entry points for this package are
// Walk and Rewrite, which allow a caller to traverse or rebuild a tree
// without needing to know about every head it might encounter.
package expr
