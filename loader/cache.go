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

package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// cacheKey names the on-disk cache file for url capped at limit rows,
// mirroring BOSSRemoteBinaryLoaderEngine's
// "<hash(url)>_sf<limit>.bin" naming, with a .zst suffix since the
// cached bytes are zstd-compressed rather than raw. The hash is
// blake2b rather than the join core's siphash: this is a content/path
// digest with no adversarial-bucketing requirement, the same role
// blake2b plays for object and index keys in fsenv.go and
// ion/blockfmt/index.go.
func cacheKey(url string, limit int) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(url))
	return fmt.Sprintf("%x_sf%d.bin.zst", h.Sum(nil), limit)
}

// Cache is an on-disk, zstd-compressed cache of raw fetched column
// bytes, rooted at Dir.
type Cache struct {
	Dir string
}

// path returns the cache file's full path for url and limit. It does
// not create Dir; Put does that before writing.
func (c Cache) path(url string, limit int) string {
	return filepath.Join(c.Dir, cacheKey(url, limit))
}

// Get returns the cached raw bytes for url/limit, or ok=false if
// nothing is cached yet.
func (c Cache) Get(url string, limit int) (data []byte, ok bool, err error) {
	raw, err := os.ReadFile(c.path(url, limit))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, false, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// Put writes data to the cache for url/limit, compressed with zstd.
func (c Cache) Put(url string, limit int, data []byte) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	defer enc.Close()
	compressed := enc.EncodeAll(data, nil)
	return os.WriteFile(c.path(url, limit), compressed, 0o644)
}
