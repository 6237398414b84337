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
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Future is a pending value: the result of an asynchronous store
// operation, available once the adapter completes it.
//
// A Future is completed at most once. Complete and Fail after the
// first resolution are no-ops.
type Future[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

// NewFuture creates an unresolved Future. Adapters complete it from
// their own goroutines or worker pools.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a Future already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := NewFuture[T]()
	f.Complete(value)
	return f
}

// Failed returns a Future already failed with err.
func Failed[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Fail(err)
	return f
}

// Complete resolves the future with value.
func (f *Future[T]) Complete(value T) {
	f.once.Do(func() {
		f.val = value
		close(f.done)
	})
}

// Fail resolves the future with err.
func (f *Future[T]) Fail(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done returns a channel closed when the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done. The returned
// error is the failure the future was resolved with, or ctx.Err() if
// the wait was abandoned first.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// executor runs accessor continuations. With a pool configured,
// continuations are submitted to it; otherwise each runs on its own
// goroutine. Pool exhaustion falls back to a goroutine so a pending
// value is never silently dropped.
type executor struct {
	pool *ants.Pool
}

func (e executor) run(fn func()) {
	if e.pool != nil {
		if err := e.pool.Submit(fn); err == nil {
			return
		}
	}
	go fn()
}
