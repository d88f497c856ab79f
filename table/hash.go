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

import (
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"
)

// hashKey0/hashKey1 are fixed SipHash keys. The hash join only needs
// process-local, collision-resistant bucketing, not a keyed MAC, so a
// fixed key (rather than one derived per engine instance) is enough to
// keep hash distribution stable across a single evaluate call.
const (
	hashKey0 = 0x9ae16a3b2f90404f
	hashKey1 = 0xc3a5c85c97cb3127
)

// HashBytes hashes an arbitrary byte slice with the fixed SipHash keys
// above; HashValue uses it for the encoded value.
func HashBytes(b []byte) uint64 {
	return siphash.Hash(hashKey0, hashKey1, b)
}

// HashValue hashes a Value for use as a hash-join bucket key. Integer
// and floating buckets are independent: the key set of any single
// column is of uniform variant by construction, so there is no risk of
// an int64 and a float64 that happen to share a bit pattern colliding.
func HashValue(v Value) uint64 {
	var buf [9]byte
	buf[0] = byte(v.Variant)
	switch v.Variant {
	case Int64:
		binary.LittleEndian.PutUint64(buf[1:], uint64(v.I64))
	default:
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(v.F64))
	}
	return HashBytes(buf[:])
}
