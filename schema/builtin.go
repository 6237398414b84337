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
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Any accepts every input unchanged. Useful for JSON slots whose shape
// is declared externally (e.g. the slotstore CLI).
func Any() Schema[any] {
	return Func[any](func(input any) (any, error) {
		return input, nil
	})
}

// String accepts string and []byte input.
func String() Schema[string] {
	return Func[string](func(input any) (string, error) {
		switch v := input.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		default:
			return "", fmt.Errorf("%w: expected string, got %T", ErrInvalid, input)
		}
	})
}

// Int accepts int, integral floats (JSON numbers decode as float64),
// and decimal strings.
func Int() Schema[int] {
	return Func[int](func(input any) (int, error) {
		switch v := input.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			if v != math.Trunc(v) {
				return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalid, v)
			}
			return int(v), nil
		case string:
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalid, v)
			}
			return n, nil
		default:
			return 0, fmt.Errorf("%w: expected integer, got %T", ErrInvalid, input)
		}
	})
}

// Float64 accepts float64, int, and decimal strings.
func Float64() Schema[float64] {
	return Func[float64](func(input any) (float64, error) {
		switch v := input.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q is not a number", ErrInvalid, v)
			}
			return f, nil
		default:
			return 0, fmt.Errorf("%w: expected number, got %T", ErrInvalid, input)
		}
	})
}

// Bool accepts bool and the strconv.ParseBool string forms.
func Bool() Schema[bool] {
	return Func[bool](func(input any) (bool, error) {
		switch v := input.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalid, v)
			}
			return b, nil
		default:
			return false, fmt.Errorf("%w: expected boolean, got %T", ErrInvalid, input)
		}
	})
}

type durationSchema struct{}

func (durationSchema) Parse(input any) (time.Duration, error) {
	switch v := input.(type) {
	case time.Duration:
		return v, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a duration", ErrInvalid, v)
		}
		return d, nil
	default:
		return 0, fmt.Errorf("%w: expected duration, got %T", ErrInvalid, input)
	}
}

func (durationSchema) Format(value time.Duration) string { return value.String() }

// Duration accepts time.Duration and time.ParseDuration strings.
// Formats as Duration.String so stored values round-trip.
func Duration() Schema[time.Duration] {
	return durationSchema{}
}

type timeSchema struct {
	layout string
}

func (s timeSchema) Parse(input any) (time.Time, error) {
	switch v := input.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(s.layout, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q does not match layout %q", ErrInvalid, v, s.layout)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("%w: expected time, got %T", ErrInvalid, input)
	}
}

func (s timeSchema) Format(value time.Time) string { return value.Format(s.layout) }

// Time accepts time.Time and strings in the given layout.
// An empty layout defaults to time.RFC3339.
func Time(layout string) Schema[time.Time] {
	if layout == "" {
		layout = time.RFC3339
	}
	return timeSchema{layout: layout}
}

// Object builds a schema for a JSON-encoded struct or composite type.
//
// Input of type T is used directly. Decoded JSON structures (maps,
// slices, scalars) are converted through a JSON round trip, so a field
// type mismatch in the stored data fails validation. Every check is
// then run against the converted value.
func Object[T any](checks ...func(T) error) Schema[T] {
	return Func[T](func(input any) (T, error) {
		var zero T

		value, ok := input.(T)
		if !ok {
			encoded, err := json.Marshal(input)
			if err != nil {
				return zero, fmt.Errorf("%w: %v", ErrInvalid, err)
			}
			if err := json.Unmarshal(encoded, &value); err != nil {
				return zero, fmt.Errorf("%w: %v", ErrInvalid, err)
			}
		}

		for _, check := range checks {
			if err := check(value); err != nil {
				return zero, fmt.Errorf("%w: %v", ErrInvalid, err)
			}
		}
		return value, nil
	})
}
