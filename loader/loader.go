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
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"

	"github.com/bossql/joinengine/table"
)

// DefaultCacheDir is used by Load when the supplied Cache has an empty
// Dir.
const DefaultCacheDir = ".joinengine-cache"

// Load fetches up to limit int64 values from url — a raw little-endian
// int64 stream, one column's worth — consulting cache first and
// populating it on a miss. limit caps both the bytes read over the
// wire and the bytes ever written to cache.
func Load(ctx context.Context, cache Cache, url string, limit int) (table.Column, error) {
	if cache.Dir == "" {
		cache.Dir = DefaultCacheDir
	}
	if data, ok, err := cache.Get(url, limit); err != nil {
		return table.Column{}, err
	} else if ok {
		return decodeInt64Column(data, limit)
	}

	data, err := fetch(ctx, url, limit)
	if err != nil {
		return table.Column{}, err
	}
	if err := cache.Put(url, limit, data); err != nil {
		return table.Column{}, err
	}
	return decodeInt64Column(data, limit)
}

func fetch(ctx context.Context, url string, limit int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("loader: %s: unexpected status %s", url, resp.Status)
	}
	limitBytes := int64(limit) * 8
	return io.ReadAll(io.LimitReader(resp.Body, limitBytes))
}

func decodeInt64Column(data []byte, limit int) (table.Column, error) {
	n := len(data) / 8
	if n > limit {
		n = limit
	}
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(binary.LittleEndian.Uint64(data[i*8 : i*8+8]))
	}
	return table.NewInt64Column(vals), nil
}
