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

import "sync"

// Diagnostics records the last error observed per storage key.
//
// Accessors never surface errors; when debugging "did this actually
// persist", attach a Diagnostics via WithDiagnostics and inspect it
// out of band. Safe for concurrent use.
type Diagnostics struct {
	errs sync.Map // storage key -> error
}

// LastError returns the most recent error recorded for key, or nil.
func (d *Diagnostics) LastError(key string) error {
	v, ok := d.errs.Load(key)
	if !ok {
		return nil
	}
	return v.(error)
}

// Reset clears the recorded error for key.
func (d *Diagnostics) Reset(key string) {
	d.errs.Delete(key)
}

// record is nil-safe so accessors can call it unconditionally.
func (d *Diagnostics) record(key string, err error) {
	if d == nil {
		return
	}
	d.errs.Store(key, err)
}
