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


// Package redis provides a Redis-backed asynchronous store. Every
// operation returns a pending value completed by the store's worker
// pool (or a goroutine when no pool is configured).
package redis

import (
	"context"
	"errors"

	"github.com/panjf2000/ants/v2"
	"github.com/redis/go-redis/v9"

	"github.com/poiesic/slotstore"
)

// Store implements slotstore.AsyncStore over a Redis client.
type Store struct {
	client *redis.Client
	prefix string
	pool   *ants.Pool
}

var _ slotstore.AsyncStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithPrefix namespaces every key under prefix. With a prefix set,
// Clear deletes only the namespaced keys instead of flushing the
// database.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithPool sets the worker pool that executes Redis operations.
// Without a pool each operation runs on its own goroutine.
// The caller owns the pool and releases it.
func WithPool(pool *ants.Pool) Option {
	return func(s *Store) {
		s.pool = pool
	}
}

// New creates a Store over an existing Redis client. The caller owns
// the client and closes it.
func New(client *redis.Client, opts ...Option) *Store {
	s := &Store{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) run(fn func()) {
	if s.pool != nil {
		if err := s.pool.Submit(fn); err == nil {
			return
		}
	}
	go fn()
}

// GetItem implements slotstore.AsyncStore.
func (s *Store) GetItem(ctx context.Context, key string) *slotstore.Future[slotstore.Item] {
	f := slotstore.NewFuture[slotstore.Item]()
	s.run(func() {
		value, err := s.client.Get(ctx, s.prefix+key).Result()
		if errors.Is(err, redis.Nil) {
			f.Complete(slotstore.Item{})
			return
		}
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(slotstore.Item{Value: value, Found: true})
	})
	return f
}

// SetItem implements slotstore.AsyncStore. Values are stored without
// expiry.
func (s *Store) SetItem(ctx context.Context, key, value string) *slotstore.Future[slotstore.Unit] {
	f := slotstore.NewFuture[slotstore.Unit]()
	s.run(func() {
		if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
			f.Fail(err)
			return
		}
		f.Complete(slotstore.Unit{})
	})
	return f
}

// RemoveItem implements slotstore.AsyncStore. Removing an absent key
// is a no-op.
func (s *Store) RemoveItem(ctx context.Context, key string) *slotstore.Future[slotstore.Unit] {
	f := slotstore.NewFuture[slotstore.Unit]()
	s.run(func() {
		if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
			f.Fail(err)
			return
		}
		f.Complete(slotstore.Unit{})
	})
	return f
}

// Clear implements slotstore.AsyncStore. With a prefix configured it
// scans and deletes only the namespaced keys; otherwise it flushes
// the whole database.
func (s *Store) Clear(ctx context.Context) *slotstore.Future[slotstore.Unit] {
	f := slotstore.NewFuture[slotstore.Unit]()
	s.run(func() {
		if s.prefix == "" {
			if err := s.client.FlushDB(ctx).Err(); err != nil {
				f.Fail(err)
				return
			}
			f.Complete(slotstore.Unit{})
			return
		}

		iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
				f.Fail(err)
				return
			}
		}
		if err := iter.Err(); err != nil {
			f.Fail(err)
			return
		}
		f.Complete(slotstore.Unit{})
	})
	return f
}

// Keys resolves to every stored key, with the prefix stripped.
func (s *Store) Keys(ctx context.Context) *slotstore.Future[[]string] {
	f := slotstore.NewFuture[[]string]()
	s.run(func() {
		var keys []string
		iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val()[len(s.prefix):])
		}
		if err := iter.Err(); err != nil {
			f.Fail(err)
			return
		}
		f.Complete(keys)
	})
	return f
}
