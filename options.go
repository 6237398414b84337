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
	"io"
	"log/slog"

	"github.com/panjf2000/ants/v2"
)

type settings struct {
	logger *slog.Logger
	pool   *ants.Pool
	diag   *Diagnostics
}

// Option configures slot construction.
type Option func(*settings)

// WithLogger sets the logger used for fail-soft diagnostics.
// Default is slog.Default(); pass Discard() for silence.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// WithPool sets the worker pool that runs async continuations.
// Without a pool each continuation runs on its own goroutine.
// The caller owns the pool and releases it.
func WithPool(pool *ants.Pool) Option {
	return func(s *settings) {
		s.pool = pool
	}
}

// WithDiagnostics attaches a per-key last-error recorder. The primary
// return contract is unchanged; the recorder is a side channel.
func WithDiagnostics(diag *Diagnostics) Option {
	return func(s *settings) {
		s.diag = diag
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSettings(opts []Option) settings {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
