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

package classify

import (
	"errors"
	"fmt"

	"dirpx.dev/derrgen/ident"
	"dirpx.dev/derrgen/item"
)

// Kind tags a classified case.
type Kind int

const (
	// Opaque marks a case left fully author-controlled.
	Opaque Kind = iota
	// Contextual marks a case that wraps exactly one underlying failure type.
	Contextual
)

// String returns the lowercase kind name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case Contextual:
		return "contextual"
	case Opaque:
		return "opaque"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MessageField is the name of the field the synthesizer injects into every
// contextual case to hold the attached context message. The name is reserved:
// a contextual case declaring its own field under it would emit a struct with
// two Msg fields.
const MessageField = "Msg"

// Rules a contextual case can violate. Kept as constants so error messages,
// tests and documentation all name the rule identically.
const (
	// RuleExactlyOneField: the single field is the wrapped failure value; zero
	// fields leave nothing to wrap, more than one makes the conversion's
	// positional construction ambiguous.
	RuleExactlyOneField = "a contextual case must declare exactly one field (the wrapped failure)"

	// RuleNoCustomDisplay: the synthesizer installs the verbatim-message
	// display on contextual cases, so an author-declared template has nowhere
	// to go.
	RuleNoCustomDisplay = "a contextual case must not declare a custom display template"

	// RuleMessageFieldReserved: the injected message field always sits next to
	// the wrapped field, so the wrapped field cannot take its name.
	RuleMessageFieldReserved = "a contextual case must not name its field " +
		`"` + MessageField + `" (reserved for the injected message field)`

	// RuleConcreteWrappedType: the emitted dispatch is an exact type switch;
	// the bare error interface would match every failure and shadow both the
	// other conversions and the pass-through.
	RuleConcreteWrappedType = "a contextual case must wrap a concrete failure type, not the bare error interface"
)

var (
	// ErrInvalidContextualCase is returned when a case marked contextual
	// violates the field-count or template-exclusivity rule.
	ErrInvalidContextualCase = errors.New("derrgen: invalid contextual case")
)

// InvalidCaseError reports which case broke which contextuality rule.
// It wraps ErrInvalidContextualCase so callers can match with errors.Is.
type InvalidCaseError struct {
	// Case is the offending case's name.
	Case ident.Ident
	// Rule is the violated rule, one of the Rule* constants.
	Rule string
}

// Error implements the built-in error interface.
func (e *InvalidCaseError) Error() string {
	return fmt.Sprintf("derrgen: case %q: %s", e.Case, e.Rule)
}

// Unwrap makes errors.Is(err, ErrInvalidContextualCase) hold for this error.
func (e *InvalidCaseError) Unwrap() error { return ErrInvalidContextualCase }

// Classified is one case together with its assigned kind. For a Contextual
// case, Wrapped is the single declared field holding the failure value; for
// an Opaque case it is the zero Field and the case is carried unmodified.
type Classified struct {
	Case    item.Case
	Kind    Kind
	Wrapped item.Field
}

// WrappedType returns the wrapped failure type of a contextual case, the key
// by which the capability registry and dispatch operate. For opaque cases it
// returns "".
func (c Classified) WrappedType() string {
	if c.Kind != Contextual {
		return ""
	}
	return c.Wrapped.Type
}

// Classify validates and tags every case of the taxonomy, preserving
// declaration order. The first rule violation aborts the whole item: the
// returned slice is nil and the error is an *InvalidCaseError.
func Classify(def *item.TypeDefinition) ([]Classified, error) {
	cases := def.Cases()
	out := make([]Classified, 0, len(cases))
	for _, c := range cases {
		cc, err := one(c)
		if err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, nil
}

// one classifies a single case. Reclassifying an opaque case is idempotent:
// the case is carried as-is, fields and attributes untouched.
func one(c item.Case) (Classified, error) {
	if !c.Contextual {
		return Classified{Case: c, Kind: Opaque}, nil
	}
	if len(c.Fields) != 1 {
		return Classified{}, &InvalidCaseError{Case: c.Name, Rule: RuleExactlyOneField}
	}
	if !c.Display.IsZero() {
		return Classified{}, &InvalidCaseError{Case: c.Name, Rule: RuleNoCustomDisplay}
	}
	if c.Fields[0].Name == MessageField {
		return Classified{}, &InvalidCaseError{Case: c.Name, Rule: RuleMessageFieldReserved}
	}
	if c.Fields[0].Type == "error" {
		return Classified{}, &InvalidCaseError{Case: c.Name, Rule: RuleConcreteWrappedType}
	}
	return Classified{Case: c, Kind: Contextual, Wrapped: c.Fields[0]}, nil
}
