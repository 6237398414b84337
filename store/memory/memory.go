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


// Package memory provides an in-memory synchronous store, useful for
// tests and for processes that don't need persistence.
package memory

import (
	"sync"

	"github.com/poiesic/slotstore"
)

// Store is an in-memory implementation of slotstore.Store.
// Safe for concurrent use. The zero value is not usable; call New.
type Store struct {
	mu    sync.RWMutex
	items map[string]string
}

var (
	_ slotstore.Store     = (*Store)(nil)
	_ slotstore.KeyLister = (*Store)(nil)
)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{items: make(map[string]string)}
}

// GetItem implements slotstore.Store.
func (s *Store) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.items[key]
	return value, found, nil
}

// SetItem implements slotstore.Store.
func (s *Store) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// RemoveItem implements slotstore.Store. Removing an absent key is a
// no-op.
func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Clear implements slotstore.Store.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]string)
	return nil
}

// Keys implements slotstore.KeyLister.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	return keys, nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
