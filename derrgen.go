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

// Package derrgen generates context-attaching error taxonomies.
//
// Given a structured taxonomy model (see dirpx.dev/derrgen/item), Generate
// produces one Go source file containing the rewritten taxonomy and a named
// conversion capability, so call sites can wrap any registered underlying
// failure with a human-readable message in one expression:
//
//	resp, err := client.Do(req)
//	resp, err = WithContext(resp, err, "building client")
//
// The pipeline is a pure function of its input: classify, synthesize,
// register, emit, assemble — single pass, no retained state, abort on the
// first fatal diagnostic with nothing partial emitted.
package derrgen

import (
	"strings"

	"dirpx.dev/derrgen/apis"
	"dirpx.dev/derrgen/classify"
	"dirpx.dev/derrgen/emit"
	"dirpx.dev/derrgen/item"
	"dirpx.dev/derrgen/registry"
	"dirpx.dev/derrgen/synth"
)

// Generate runs the whole generation pipeline for one taxonomy and returns
// the assembled artifact.
//
// Failure modes are exactly the generation-time diagnostics of the stages:
//
//   - item.ErrMalformedItem for a structurally invalid model (the front end
//     normally reports this earlier, when building the TypeDefinition);
//   - classify.ErrInvalidContextualCase for a broken contextual case;
//   - registry.ErrDuplicateWrappedType for two cases claiming one wrapped
//     type within the capability scope.
//
// All of them abort the item as a whole; on error no artifact exists.
func Generate(def *item.TypeDefinition, opts ...Option) (*apis.Artifact, error) {
	if def == nil {
		return nil, &item.MalformedItemError{Item: "", Reason: "nil type definition"}
	}

	// (1) Resolve generation options on top of the defaults.
	cfg := newConfig(def)
	for _, opt := range opts {
		opt(cfg)
	}

	// (2) Classify every case; the first rule violation aborts the item.
	classified, err := classify.Classify(def)
	if err != nil {
		return nil, err
	}

	// (3) Synthesize the augmented cases. Pure; no fallible paths.
	augmented := synth.Augment(classified)

	// (4) Register contextual cases in the capability scope, enforcing the
	// one-case-per-wrapped-type invariant.
	scope, err := registry.Collect(def.Capability(), augmented)
	if err != nil {
		return nil, err
	}

	// (5) Emit and assemble: rewritten taxonomy first, capability
	// declaration second, one realization per registry entry last.
	src, err := emit.File(emit.Input{
		Package: cfg.pkg,
		Header:  cfg.header,
		Def:     def,
		Cases:   augmented,
		Scope:   scope,
	})
	if err != nil {
		return nil, err
	}

	wrapped := make([]string, 0, scope.Len())
	for _, e := range scope.Entries() {
		wrapped = append(wrapped, e.Wrapped)
	}

	return &apis.Artifact{
		Type:       def.Name(),
		Capability: def.Capability(),
		Wrapped:    wrapped,
		Source:     src,
	}, nil
}

// config carries the resolved generation options.
type config struct {
	pkg    string
	header []string
}

// newConfig derives the defaults for a taxonomy: the target package falls
// back to the lowercased taxonomy name.
func newConfig(def *item.TypeDefinition) *config {
	return &config{
		pkg: strings.ToLower(def.Name().String()),
	}
}
