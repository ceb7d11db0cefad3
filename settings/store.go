// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"maps"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-settings/internal/logger"
)

// Store holds named settings with opaque values. The zero value is usable;
// New is the usual entry point.
type Store struct {
	entries map[string]any
	log     *logger.Logger
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithLogger routes the store's diagnostic messages through l instead of the
// module's default stderr logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger.Wrap(l, "settings")
	}
}

// New builds a Store from up to two sources, applied in a fixed order:
// defaults first, then the JSON file at jsonFile, so file values win on
// conflicting names. A nil defaults map and an empty jsonFile are both
// skipped.
//
// A JSON file that cannot be read or parsed never fails construction; the
// failure is logged and the store keeps whatever defaults contributed.
func New(defaults map[string]any, jsonFile string, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]any),
		log:     logger.NewLogger("settings"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if defaults != nil {
		s.UpdateFromMap(defaults)
	}
	if jsonFile != "" {
		s.LoadJSON(jsonFile)
	}

	return s
}

// Set assigns value under name exactly as given, bypassing sanitization. The
// name is trusted as-is; callers that need filtering should go through
// UpdateFromMap instead.
func (s *Store) Set(name string, value any) {
	if s.entries == nil {
		s.entries = make(map[string]any)
	}

	s.entries[name] = value
}

// Get returns the value stored under name. A missing name is first
// initialized to def, so a subsequent Has(name) reports true. This
// get-or-initialize behavior is part of the contract, not a convenience.
func (s *Store) Get(name string, def any) any {
	if !s.Has(name) {
		s.Set(name, def)
	}

	return s.entries[name]
}

// Has reports whether name is currently present in the store.
func (s *Store) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Len returns the number of stored settings.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns a shallow copy of every setting. Replacing top-level entries
// in the returned map does not affect the store; nested mutable values are
// shared with it.
func (s *Store) All() map[string]any {
	if s.entries == nil {
		return map[string]any{}
	}

	return maps.Clone(s.entries)
}

// diag returns the store's diagnostic logger, falling back to the module
// default for zero-value stores.
func (s *Store) diag() *logger.Logger {
	if s.log == nil {
		s.log = logger.NewLogger("settings")
	}

	return s.log
}
