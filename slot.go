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

import (
	"encoding/json"
	"log/slog"

	"github.com/poiesic/slotstore/schema"
)

// Entry declares one typed slot.
type Entry[T any] struct {
	// Key is the storage key passed to the adapter. Empty means the
	// slot's logical name is used.
	Key string

	// Schema validates stored and written values.
	Schema schema.Schema[T]

	// Default is substituted whenever retrieval or validation cannot
	// produce a valid value. It should itself satisfy Schema;
	// otherwise Get hands callers an invalid value unchecked.
	Default T

	// JSON marks the stored text as JSON: parse-before-validate on
	// reads, stringify on writes.
	JSON bool
}

// binding is the per-slot state shared by the sync and async accessor
// variants: resolved key, schema, default, encoding, and the injected
// diagnostics capabilities. Immutable after construction.
type binding[T any] struct {
	key    string
	schema schema.Schema[T]
	def    T
	json   bool
	logger *slog.Logger
	diag   *Diagnostics
}

func newBinding[T any](name string, entry Entry[T], s settings) binding[T] {
	key := entry.Key
	if key == "" {
		key = name
	}
	return binding[T]{
		key:    key,
		schema: entry.Schema,
		def:    entry.Default,
		json:   entry.JSON,
		logger: s.logger,
		diag:   s.diag,
	}
}

// decode turns raw stored text into a valid value, or def when the
// text is malformed or fails the schema. Decode failures are silent
// toward the caller: stale or corrupt persisted data must never make
// a slot unreadable.
func (b *binding[T]) decode(raw string, def T) T {
	var input any = raw
	if b.json {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			b.logger.Debug("stored value is not valid JSON, using default",
				"key", b.key, "err", err)
			b.diag.record(b.key, err)
			return def
		}
		input = v
	}

	value, err := b.schema.Parse(input)
	if err != nil {
		b.logger.Debug("stored value failed validation, using default",
			"key", b.key, "err", err)
		b.diag.record(b.key, err)
		return def
	}
	return value
}

// encode produces the stored text for a validated value: JSON when the
// slot is JSON-encoded, the schema's textual form otherwise.
func (b *binding[T]) encode(value T) (string, error) {
	if b.json {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
	return schema.Format(b.schema, value), nil
}

// validate runs the schema against a value passed to Set. Failures are
// logged as warnings since they indicate a caller bug rather than
// stale stored data.
func (b *binding[T]) validate(value T) (T, bool) {
	validated, err := b.schema.Parse(value)
	if err != nil {
		b.logger.Warn("rejected invalid value, nothing written",
			"key", b.key, "value", value, "err", err)
		return validated, false
	}
	return validated, true
}

// Slot is the synchronous accessor triple for one declared slot.
// Stateless apart from its immutable binding; all state lives in the
// backing store, and every Get re-reads it.
type Slot[T any] struct {
	store Store
	binding[T]
}

// New constructs a synchronous accessor for one slot. The storage key
// defaults to name when the entry does not set one.
func New[T any](store Store, name string, entry Entry[T], opts ...Option) *Slot[T] {
	return &Slot[T]{
		store:   store,
		binding: newBinding(name, entry, newSettings(opts)),
	}
}

// Get returns the stored value, or the slot default when the key is
// absent, the stored text is invalid, or the store fails. It never
// returns an error.
func (s *Slot[T]) Get() T {
	return s.GetOr(s.def)
}

// GetOr is Get with a per-call default override.
func (s *Slot[T]) GetOr(def T) T {
	raw, found, err := s.store.GetItem(s.key)
	if err != nil {
		s.logger.Error("read failed, using default", "key", s.key, "err", err)
		s.diag.record(s.key, err)
		return def
	}
	if !found {
		return def
	}
	return s.decode(raw, def)
}

// Set validates value and writes its encoded form. Invalid values are
// logged and dropped without touching the store; store failures are
// logged and absorbed.
func (s *Slot[T]) Set(value T) {
	validated, ok := s.validate(value)
	if !ok {
		return
	}
	encoded, err := s.encode(validated)
	if err != nil {
		s.logger.Warn("failed to encode value, nothing written",
			"key", s.key, "err", err)
		return
	}
	if err := s.store.SetItem(s.key, encoded); err != nil {
		s.logger.Error("write failed", "key", s.key, "err", err)
		s.diag.record(s.key, err)
	}
}

// Remove deletes the stored value. Store failures are logged and
// absorbed; a subsequent Get reflects whatever the store holds.
func (s *Slot[T]) Remove() {
	if err := s.store.RemoveItem(s.key); err != nil {
		s.logger.Error("remove failed", "key", s.key, "err", err)
		s.diag.record(s.key, err)
	}
}
