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

// AsyncSlot is the asynchronous accessor triple for one declared slot.
// Every operation returns a pending value, including short-circuit
// paths such as validation failures in Set: an async slot's mode never
// varies per call.
type AsyncSlot[T any] struct {
	store AsyncStore
	exec  executor
	binding[T]
}

// NewAsync constructs an asynchronous accessor for one slot.
func NewAsync[T any](store AsyncStore, name string, entry Entry[T], opts ...Option) *AsyncSlot[T] {
	s := newSettings(opts)
	return &AsyncSlot[T]{
		store:   store,
		exec:    executor{pool: s.pool},
		binding: newBinding(name, entry, s),
	}
}

// Get resolves to the stored value, or the slot default when the key
// is absent, invalid, or the store fails. The returned future never
// fails.
func (s *AsyncSlot[T]) Get(ctx context.Context) *Future[T] {
	return s.GetOr(ctx, s.def)
}

// GetOr is Get with a per-call default override.
func (s *AsyncSlot[T]) GetOr(ctx context.Context, def T) *Future[T] {
	out := NewFuture[T]()
	raw := s.store.GetItem(ctx, s.key)
	s.exec.run(func() {
		item, err := raw.Await(ctx)
		if err != nil {
			s.logger.Error("read failed, using default", "key", s.key, "err", err)
			s.diag.record(s.key, err)
			out.Complete(def)
			return
		}
		if !item.Found {
			out.Complete(def)
			return
		}
		out.Complete(s.decode(item.Value, def))
	})
	return out
}

// Set validates value and writes its encoded form. Invalid values
// resolve immediately without touching the store; store failures are
// logged and absorbed. The returned future never fails.
func (s *AsyncSlot[T]) Set(ctx context.Context, value T) *Future[Unit] {
	validated, ok := s.validate(value)
	if !ok {
		return Resolved(Unit{})
	}
	encoded, err := s.encode(validated)
	if err != nil {
		s.logger.Warn("failed to encode value, nothing written",
			"key", s.key, "err", err)
		return Resolved(Unit{})
	}

	out := NewFuture[Unit]()
	raw := s.store.SetItem(ctx, s.key, encoded)
	s.exec.run(func() {
		if _, err := raw.Await(ctx); err != nil {
			s.logger.Error("write failed", "key", s.key, "err", err)
			s.diag.record(s.key, err)
		}
		out.Complete(Unit{})
	})
	return out
}

// Remove deletes the stored value. Store failures are logged and
// absorbed. The returned future never fails.
func (s *AsyncSlot[T]) Remove(ctx context.Context) *Future[Unit] {
	out := NewFuture[Unit]()
	raw := s.store.RemoveItem(ctx, s.key)
	s.exec.run(func() {
		if _, err := raw.Await(ctx); err != nil {
			s.logger.Error("remove failed", "key", s.key, "err", err)
			s.diag.record(s.key, err)
		}
		out.Complete(Unit{})
	})
	return out
}
