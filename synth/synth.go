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

// Package synth rewrites classified cases into their augmented, emit-ready
// form.
//
// For a contextual case the synthesizer builds a fresh case value with the
// deterministic field order [wrapped failure, message]: the original wrapped
// field (forced to be the causal source) followed by one injected string
// field holding the context message, plus a display template that renders the
// message verbatim. Opaque cases are copied through unchanged.
//
// The synthesizer never mutates its input and has no fallible paths — all
// validation happened in the classifier.
package synth

import (
	"dirpx.dev/derrgen/classify"
	"dirpx.dev/derrgen/display"
	"dirpx.dev/derrgen/item"
)

// MessageField is the name of the injected context-message field. The
// classifier rejects any contextual case claiming it (see
// classify.RuleMessageFieldReserved), so augmentation can never produce a
// duplicate field.
const MessageField = classify.MessageField

// AugmentedCase is the synthesizer's output for one case: the case in its
// final, emit-ready shape together with its kind. For contextual kinds,
// Wrapped is the causal-source field (always Case.Fields[0] after
// augmentation); for opaque kinds Case is byte-for-byte the classifier's
// input and Wrapped is the zero Field.
type AugmentedCase struct {
	Case    item.Case
	Kind    classify.Kind
	Wrapped item.Field
}

// Augment rewrites every classified case, preserving declaration order.
func Augment(cases []classify.Classified) []AugmentedCase {
	out := make([]AugmentedCase, 0, len(cases))
	for _, cc := range cases {
		out = append(out, one(cc))
	}
	return out
}

// one builds the augmented form of a single case as a fresh value; the
// author's declared case is never modified in place.
func one(cc classify.Classified) AugmentedCase {
	if cc.Kind != classify.Contextual {
		return AugmentedCase{Case: cc.Case, Kind: cc.Kind}
	}

	wrapped := cc.Wrapped
	wrapped.Source = true

	c := cc.Case
	// Wrapped value precedes message, so positional construction at the
	// conversion site is unambiguous.
	c.Fields = []item.Field{
		wrapped,
		{Name: MessageField, Type: "string"},
	}
	c.Display = display.Verbatim(MessageField)

	return AugmentedCase{Case: c, Kind: classify.Contextual, Wrapped: wrapped}
}
