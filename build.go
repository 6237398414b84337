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


package slotstore

import "github.com/poiesic/slotstore/schema"

// Definition is the type-erased form of Entry, used when a slot set is
// declared as data (config files, dynamic layouts) rather than in
// code. schema.Erase bridges typed schemas into this form.
type Definition struct {
	Key     string
	Schema  schema.Schema[any]
	Default any
	JSON    bool
}

func (d Definition) entry() Entry[any] {
	return Entry[any]{
		Key:     d.Key,
		Schema:  d.Schema,
		Default: d.Default,
		JSON:    d.JSON,
	}
}

// Build produces one synchronous accessor per definition, bound to its
// resolved storage key, schema, default, and encoding. Build performs
// no I/O; it only binds. An empty definitions map yields an empty
// accessor map.
func Build(store Store, defs map[string]Definition, opts ...Option) map[string]*Slot[any] {
	out := make(map[string]*Slot[any], len(defs))
	for name, def := range defs {
		out[name] = New(store, name, def.entry(), opts...)
	}
	return out
}

// BuildAsync is Build for asynchronous stores.
func BuildAsync(store AsyncStore, defs map[string]Definition, opts ...Option) map[string]*AsyncSlot[any] {
	out := make(map[string]*AsyncSlot[any], len(defs))
	for name, def := range defs {
		out[name] = NewAsync(store, name, def.entry(), opts...)
	}
	return out
}
