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

import "context"

// Store is the synchronous adapter capability: raw text storage by
// key. Implementations must be safe for concurrent use.
//
// GetItem reports found=false for absent keys; an error is reserved
// for backend faults (I/O, closed store). Accessors absorb both per
// the fail-soft contract.
type Store interface {
	GetItem(key string) (value string, found bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Clear() error
}

// KeyLister is an optional capability of synchronous stores that can
// enumerate their keys. Used by snapshot export, not by accessors.
type KeyLister interface {
	Keys() ([]string, error)
}

// Item is the raw result of an asynchronous read.
type Item struct {
	Value string
	Found bool
}

// Unit is the empty result of an asynchronous write or remove.
type Unit = struct{}

// AsyncStore is the asynchronous adapter capability. Every operation
// returns a pending value completed by the adapter's own concurrency
// mechanism; the returned Future fails only on backend faults.
//
// A store implements Store or AsyncStore, never both: the accessor
// variant is chosen at construction time, not by probing results.
type AsyncStore interface {
	GetItem(ctx context.Context, key string) *Future[Item]
	SetItem(ctx context.Context, key, value string) *Future[Unit]
	RemoveItem(ctx context.Context, key string) *Future[Unit]
	Clear(ctx context.Context) *Future[Unit]
}
