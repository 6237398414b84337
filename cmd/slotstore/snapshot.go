// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"sort"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Snapshot format: entry count (varint), then key/value string pairs
// in sorted key order. Values are the raw stored text, so a snapshot
// restores byte-identical slot contents.

func marshalSnapshot(entries map[string]string) []byte {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	size := varint.PositiveInt.Size(len(entries))
	for _, key := range keys {
		size += ord.String.Size(key)
		size += ord.String.Size(entries[key])
	}

	buf := make([]byte, size)
	n := varint.PositiveInt.Marshal(len(entries), buf)
	for _, key := range keys {
		n += ord.String.Marshal(key, buf[n:])
		n += ord.String.Marshal(entries[key], buf[n:])
	}
	return buf
}

func unmarshalSnapshot(data []byte) (map[string]string, error) {
	count, n, err := varint.PositiveInt.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot header: %w", err)
	}

	entries := make(map[string]string, count)
	for i := 0; i < count; i++ {
		key, m, err := ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("snapshot entry %d key: %w", i, err)
		}
		n += m

		value, m, err := ord.String.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("snapshot entry %d value: %w", i, err)
		}
		n += m

		entries[key] = value
	}
	return entries, nil
}
