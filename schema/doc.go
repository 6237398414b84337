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


// Package schema defines the validator capability consumed by slot
// accessors, plus a set of built-in schemas for common value types.
//
// A Schema is an attempt-parse: given raw input it either produces a
// valid value of its target type or fails. Slot accessors never see
// partially valid values; on failure they substitute the slot's
// default.
//
// # Built-in schemas
//
//   - String, Int, Float64, Bool: scalar slots stored as plain text
//   - Duration, Time: scalars with a custom textual form (Formatter)
//   - Object: JSON-encoded structs with optional semantic checks
//   - Any: accept-everything, for externally declared JSON shapes
//
// Custom schemas are a single function:
//
//	port := schema.Func[int](func(input any) (int, error) {
//	    n, err := schema.Int().Parse(input)
//	    if err != nil || n < 1 || n > 65535 {
//	        return 0, schema.ErrInvalid
//	    }
//	    return n, nil
//	})
//
// # Type-erased form
//
// The declarative slotstore.Build factory holds heterogeneous slots in
// one map, so its definitions carry Schema[any]. Erase bridges a typed
// schema into that form without losing its Formatter.
package schema
