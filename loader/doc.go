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

// Package loader implements the fetching side of the external storage
// contract: it returns a column of up to N int64 values from a URL as
// a table.Column. Binding that column into a named table and splicing
// it into the join core's input is left to a prior pipeline stage; this
// package does neither. The join core itself never imports this package; it
// only ever sees the Table the substitution produces.
//
// Fetched columns are cached on disk, zstd-compressed, keyed by a hash
// of the URL and the row limit — the same cache shape as the original
// BOSSRemoteBinaryLoaderEngine's local cache file.
package loader
