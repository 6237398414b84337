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


// Package slotstore provides typed accessors over pluggable key/value
// stores.
//
// Callers declare named slots, each with a validation schema, a
// default value, and an optional JSON encoding, and receive a
// get/set/remove surface per slot. Whether that surface is synchronous
// or asynchronous is a property of the backing store, fixed at
// construction time.
//
// # Adapters
//
// A backing store implements one of two capability contracts:
//
//   - Store: synchronous raw text storage (store/memory, store/badger)
//   - AsyncStore: the same operations returning pending values,
//     completed by the adapter's own concurrency (store/redis)
//
// The accessor variant follows the contract: New/Build bind Slot
// accessors whose operations complete before returning, while
// NewAsync/BuildAsync bind AsyncSlot accessors whose operations return
// a Future. Result shapes are never probed at runtime.
//
// # Declaring slots
//
//	retries := slotstore.New(store, "retries", slotstore.Entry[int]{
//	    Schema:  schema.Int(),
//	    Default: 3,
//	})
//	retries.Set(5)
//	n := retries.Get() // 5, or 3 if the stored text is absent or invalid
//
// JSON slots parse before validating and stringify before storing:
//
//	user := slotstore.New(store, "user", slotstore.Entry[User]{
//	    Schema:  schema.Object[User](),
//	    Default: User{},
//	    JSON:    true,
//	})
//
// The declarative form binds a whole slot set at once:
//
//	slots := slotstore.Build(store, map[string]slotstore.Definition{
//	    "theme": {Schema: schema.Erase(schema.String()), Default: "dark"},
//	})
//
// # Fail-soft contract
//
// No accessor operation ever surfaces an error. Absent keys, malformed
// or schema-rejected stored text, and store faults all collapse into
// the slot default (reads) or a logged no-op (writes). This keeps
// slots readable across schema migrations that invalidate old stored
// shapes, at the cost of hiding persistence faults from the primary
// return path. Attach a Diagnostics recorder when that distinction
// matters.
//
// # Concurrency
//
// The package adds no locking, caching, or ordering of its own: every
// Get re-reads the store, and concurrent writes to one slot race at
// the adapter level. Accessors are safe for concurrent use whenever
// the backing store is.
package slotstore
