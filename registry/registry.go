/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package registry maintains the capability scope: the mapping from wrapped
// failure type to the single contextual case that claims it, under one
// capability name.
//
// The central uniqueness invariant lives here: within one capability, a given
// failure type may be auto-wrapped by at most one case, because the emitted
// conversion must pick exactly one case for each failure it sees. A second
// claim on the same wrapped type is a hard stop for the whole item.
//
// A Scope is created fresh per generator invocation and never persisted, so
// two independently generated taxonomies sharing a capability name are
// invisible to each other here; if they land in the same Go package, the Go
// compiler rejects the duplicate top-level declaration. That boundary is
// intentional.
package registry

import (
	"errors"
	"fmt"

	"dirpx.dev/derrgen/classify"
	"dirpx.dev/derrgen/ident"
	"dirpx.dev/derrgen/synth"
)

var (
	// ErrDuplicateWrappedType is returned when two contextual cases in the
	// same capability scope wrap the same failure type.
	ErrDuplicateWrappedType = errors.New("derrgen: duplicate wrapped type")
)

// DuplicateWrappedTypeError reports both claimants of a wrapped type and the
// scope they collided in. It wraps ErrDuplicateWrappedType so callers can
// match with errors.Is.
type DuplicateWrappedTypeError struct {
	// Scope is the capability name the collision happened under.
	Scope ident.Ident
	// Wrapped is the contested failure type.
	Wrapped string
	// First and Second are the case names in declaration order.
	First  ident.Ident
	Second ident.Ident
}

// Error implements the built-in error interface.
func (e *DuplicateWrappedTypeError) Error() string {
	return fmt.Sprintf("derrgen: capability %q: wrapped type %s claimed by both %q and %q",
		e.Scope, e.Wrapped, e.First, e.Second)
}

// Unwrap makes errors.Is(err, ErrDuplicateWrappedType) hold for this error.
func (e *DuplicateWrappedTypeError) Unwrap() error { return ErrDuplicateWrappedType }

// Entry is one registered (wrapped type -> case) mapping, in its emit-ready
// augmented form.
type Entry struct {
	// Wrapped is the wrapped failure type, the dispatch key.
	Wrapped string
	// Case is the augmented contextual case that claims the type.
	Case synth.AugmentedCase
}

// Scope collects the conversion entries of one capability. It is not safe
// for concurrent use; a generator invocation is single-threaded by design.
type Scope struct {
	name    ident.Ident
	byType  map[string]int // wrapped type -> index into entries
	entries []Entry
}

// NewScope creates an empty scope for the resolved capability name.
func NewScope(name ident.Ident) *Scope {
	return &Scope{
		name:   name,
		byType: make(map[string]int),
	}
}

// Collect builds the scope for a whole item in one pass, inserting every
// contextual case in declaration order and skipping opaque ones. On a
// duplicate wrapped type it returns the *DuplicateWrappedTypeError and no
// scope; nothing partial escapes.
func Collect(name ident.Ident, cases []synth.AugmentedCase) (*Scope, error) {
	s := NewScope(name)
	for _, ac := range cases {
		if ac.Kind != classify.Contextual {
			continue
		}
		if err := s.Insert(ac); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Name returns the capability name identifying this scope.
func (s *Scope) Name() ident.Ident { return s.name }

// Len returns the number of registered conversions.
func (s *Scope) Len() int { return len(s.entries) }

// Insert registers one augmented contextual case under its wrapped type.
// It fails with a *DuplicateWrappedTypeError if the type is already claimed.
func (s *Scope) Insert(ac synth.AugmentedCase) error {
	wrapped := ac.Wrapped.Type
	if prev, ok := s.byType[wrapped]; ok {
		return &DuplicateWrappedTypeError{
			Scope:   s.name,
			Wrapped: wrapped,
			First:   s.entries[prev].Case.Case.Name,
			Second:  ac.Case.Name,
		}
	}
	s.byType[wrapped] = len(s.entries)
	s.entries = append(s.entries, Entry{Wrapped: wrapped, Case: ac})
	return nil
}

// Entries returns the registered conversions in declaration order. The slice
// is a defensive copy; the scope's internal state stays frozen.
func (s *Scope) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
