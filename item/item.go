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

package item

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/derrgen/display"
	"dirpx.dev/derrgen/ident"
)

// DefaultCapability is the conventional name for the generated conversion
// capability, used when the taxonomy does not override it.
const DefaultCapability ident.Ident = "WithContext"

// Field is one declared field of a case.
type Field struct {
	// Name is the field's name in the emitted case struct. It must be a
	// valid exported identifier so callers can construct and inspect cases.
	Name string

	// Type is the Go type expression for the field, written exactly as it
	// should appear in the emitted source, e.g. "string", "*net.OpError",
	// "io/fs.PathError" resolved to "*fs.PathError".
	Type string

	// Import is the import path that provides Type, if any. Left empty for
	// builtin and same-package types. The emitter collects these into the
	// generated file's import block.
	Import string

	// Source marks the field as the causal source of the case: the emitted
	// Unwrap() method returns it, so errors.Is / errors.As see through the
	// case to the underlying failure.
	Source bool
}

// Case is one alternative of the taxonomy: an enum-style variant, or the
// single implicit case of a struct-shaped taxonomy.
type Case struct {
	// Name is the case's name. The emitted case struct is named
	// "<Taxonomy><Case>", e.g. "ErrorReqwest".
	Name ident.Ident

	// Doc is an optional one-line description carried into the emitted
	// struct's doc comment.
	Doc string

	// Fields is the ordered field list as declared by the author.
	Fields []Field

	// Display is the author's display template, or display.Empty when the
	// case declared none.
	Display display.Template

	// Contextual marks the case as wrapping exactly one underlying failure
	// type and receiving an attached message at conversion time. Mutually
	// exclusive with a custom Display; the classifier enforces that.
	Contextual bool
}

var (
	// ErrMalformedItem is returned when the input is structurally not an
	// enum-style taxonomy with at least one case, nor a struct-shaped
	// taxonomy, or when one of its names or templates cannot be validated.
	ErrMalformedItem = errors.New("derrgen: malformed item")
)

// MalformedItemError reports why an annotated item could not be modeled.
// It wraps ErrMalformedItem so callers can match with errors.Is.
type MalformedItemError struct {
	// Item is the (possibly unvalidated) name of the offending item.
	Item string
	// Reason is a short human-readable description of the violated rule.
	Reason string
}

// Error implements the built-in error interface.
func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("derrgen: malformed item %q: %s", e.Item, e.Reason)
}

// Unwrap makes errors.Is(err, ErrMalformedItem) hold for this error.
func (e *MalformedItemError) Unwrap() error { return ErrMalformedItem }

// TypeDefinition is the validated, immutable model of one annotated taxonomy.
//
// It is created once per generator invocation by New or NewStruct, consumed
// by every later pipeline stage, and never persisted. All accessors return
// either value types or defensive copies, so a TypeDefinition can be shared
// freely once built.
type TypeDefinition struct {
	name       ident.Ident
	doc        string
	cases      []Case
	capability ident.Ident
	structItem bool
}

// New models an enum-style taxonomy: a name plus one or more cases.
//
// It validates the item's structure (at least one case, every name a valid
// exported identifier, every declared display template well-formed) and fails
// with a MalformedItemError otherwise. Per-case contextuality rules are NOT
// checked here; that is the classifier's job.
func New(name string, cases []Case, opts ...Option) (*TypeDefinition, error) {
	n, err := ident.Parse(name)
	if err != nil {
		return nil, &MalformedItemError{Item: name, Reason: "item name is not a valid exported identifier"}
	}
	if len(cases) == 0 {
		return nil, &MalformedItemError{Item: n.String(), Reason: "an enum-style item needs at least one case"}
	}

	def := &TypeDefinition{
		name:       n,
		capability: DefaultCapability,
		cases:      copyCases(cases),
	}
	for i := range def.cases {
		if err := validateCase(&def.cases[i]); err != nil {
			return nil, &MalformedItemError{Item: n.String(), Reason: err.Error()}
		}
	}
	if err := applyOptions(def, opts); err != nil {
		return nil, &MalformedItemError{Item: n.String(), Reason: err.Error()}
	}
	return def, nil
}

// NewStruct models a struct-shaped taxonomy: the struct becomes a single
// implicit case. If the case carries no name of its own, it inherits the
// item's name.
func NewStruct(name string, c Case, opts ...Option) (*TypeDefinition, error) {
	n, err := ident.Parse(name)
	if err != nil {
		return nil, &MalformedItemError{Item: name, Reason: "item name is not a valid exported identifier"}
	}
	if c.Name == ident.Empty {
		c.Name = n
	}

	def := &TypeDefinition{
		name:       n,
		capability: DefaultCapability,
		cases:      copyCases([]Case{c}),
		structItem: true,
	}
	if err := validateCase(&def.cases[0]); err != nil {
		return nil, &MalformedItemError{Item: n.String(), Reason: err.Error()}
	}
	if err := applyOptions(def, opts); err != nil {
		return nil, &MalformedItemError{Item: n.String(), Reason: err.Error()}
	}
	return def, nil
}

// Name returns the taxonomy's name.
func (d *TypeDefinition) Name() ident.Ident { return d.name }

// Doc returns the taxonomy's optional one-line description.
func (d *TypeDefinition) Doc() string { return d.doc }

// Capability returns the resolved capability name: the explicit override if
// one was provided, DefaultCapability otherwise.
func (d *TypeDefinition) Capability() ident.Ident { return d.capability }

// IsStruct reports whether the taxonomy was declared as a struct (a single
// implicit case) rather than an enum-style set of cases.
func (d *TypeDefinition) IsStruct() bool { return d.structItem }

// Cases returns a defensive copy of the ordered case list. Declaration order
// is preserved; downstream stages rely on it for deterministic output.
func (d *TypeDefinition) Cases() []Case { return copyCases(d.cases) }

// validateCase checks the parts of a case that do not depend on its
// contextuality: names and template syntax. It canonicalizes the case name
// in place.
func validateCase(c *Case) error {
	n, err := ident.Parse(c.Name.String())
	if err != nil {
		return fmt.Errorf("case %q: name is not a valid exported identifier", c.Name)
	}
	c.Name = n

	seen := make(map[string]struct{}, len(c.Fields))
	sources := 0
	for i := range c.Fields {
		f := &c.Fields[i]
		// Field names are emitted verbatim, so the declared name itself must
		// already be the canonical exported form.
		if fn, err := ident.Parse(f.Name); err != nil || fn.String() != f.Name {
			return fmt.Errorf("case %q: field %q is not a valid exported identifier", c.Name, f.Name)
		}
		// Canonicalize the type expression; it doubles as the wrapped-type
		// identity in the capability registry.
		f.Type = strings.TrimSpace(f.Type)
		if f.Type == "" {
			return fmt.Errorf("case %q: field %q has no type", c.Name, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("case %q: duplicate field %q", c.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Source {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("case %q: more than one field marked as causal source", c.Name)
	}

	if err := display.Validate(c.Display); err != nil {
		return fmt.Errorf("case %q: %v", c.Name, err)
	}
	for _, ref := range c.Display.Fields() {
		if _, ok := seen[ref]; !ok {
			return fmt.Errorf("case %q: display template references unknown field %q", c.Name, ref)
		}
	}
	return nil
}

// copyCases clones the case slice and every field list inside it, so the
// model never aliases caller-owned storage.
func copyCases(src []Case) []Case {
	dst := make([]Case, len(src))
	copy(dst, src)
	for i := range dst {
		if len(dst[i].Fields) > 0 {
			fs := make([]Field, len(dst[i].Fields))
			copy(fs, dst[i].Fields)
			dst[i].Fields = fs
		}
	}
	return dst
}
