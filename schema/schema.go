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


package schema

import (
	"errors"
	"fmt"
)

// ErrInvalid indicates that an input does not satisfy a schema.
// All built-in schemas wrap their failures with this sentinel.
var ErrInvalid = errors.New("value does not satisfy schema")

// Schema validates raw input and coerces it into a value of type T.
//
// Parse receives either the raw stored text (plain slots), a decoded
// JSON structure (JSON slots), or a value of type T (writes). It must
// succeed with a usable T or fail; it never partially succeeds.
type Schema[T any] interface {
	Parse(input any) (T, error)
}

// Func adapts a plain function to a Schema.
type Func[T any] func(input any) (T, error)

// Parse implements Schema.
func (f Func[T]) Parse(input any) (T, error) { return f(input) }

// Formatter is an optional capability for schemas whose textual
// representation differs from fmt.Sprint (time, duration).
type Formatter[T any] interface {
	Format(value T) string
}

// Format returns the textual representation of value under s.
// Falls back to fmt.Sprint when s does not implement Formatter.
func Format[T any](s Schema[T], value T) string {
	if f, ok := s.(Formatter[T]); ok {
		return f.Format(value)
	}
	return fmt.Sprint(value)
}

type erased[T any] struct {
	inner Schema[T]
}

func (e erased[T]) Parse(input any) (any, error) {
	v, err := e.inner.Parse(input)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e erased[T]) Format(value any) string {
	v, ok := value.(T)
	if !ok {
		return fmt.Sprint(value)
	}
	return Format(e.inner, v)
}

// Erase converts a typed schema into the Schema[any] form used by the
// declarative slotstore.Build config. Formatting is preserved.
func Erase[T any](s Schema[T]) Schema[any] {
	return erased[T]{inner: s}
}
