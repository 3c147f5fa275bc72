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

package ident

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Ident is the canonical, validated representation of an exported identifier
// emitted by derrgen.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with validated names.
//
// IMPORTANT: Empty idents ("") are NOT allowed. Every generated declaration
// MUST have a non-empty name.
type Ident string

// MinLength and MaxLength define the allowed length range for a canonical
// derrgen identifier.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid ident. Single-letter names
	// such as "E" are legitimate Go type names, so we allow them.
	MinLength = 1

	// MaxLength is the maximum length for a valid ident.
	// 64 characters is enough for descriptive names like
	// "RepositorySnapshotError" while still preventing unbounded or
	// accidental long strings.
	MaxLength = 64
)

const (
	// identFmt is the canonical regular expression used to validate idents.
	//
	// The pattern is intentionally kept in a separate constant so that:
	//   - it can be referenced from tests;
	//   - it is obvious that the regexp below is derived from this exact pattern;
	//   - it is easy to keep the regexp and the length constraints in sync.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an uppercase ASCII letter, so the
	//	        generated declaration is exported;
	//	[A-Za-z0-9]{0,63} - the remaining characters may be ASCII letters or
	//	                    digits; the quantifier {0,63} makes the total
	//	                    length 1..64 characters;
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {0,63} is tied to MinLength / MaxLength above.
	// If you change MinLength / MaxLength, make sure to adjust this pattern as well.
	identFmt = `^[A-Z][A-Za-z0-9]{0,63}$`
)

var (
	// identRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical derrgen identifier.
	//
	// We precompile it so that repeated validations (e.g. while building an
	// item model with many cases) do not pay the compilation cost over and
	// over again.
	//
	// Examples of valid idents:
	//   - "Error"
	//   - "Reqwest"
	//   - "ContextErr1"
	//   - "WithContext"
	//
	// Examples of invalid idents:
	//   - "error"       (unexported)
	//   - "With_Ctx"    (underscore)
	//   - ""            (empty)
	//   - "1Error"      (does not start with a letter)
	identRe = regexp.MustCompile(identFmt)
)

var (
	// ErrIdentInvalid is returned when a value cannot be parsed or validated
	// as a derrgen identifier.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about name format" vs "this is some other error".
	ErrIdentInvalid = errors.New("derrgen: invalid identifier")
)

// Ensure Ident implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or taxonomy structs.
var (
	_ encoding.TextMarshaler   = (*Ident)(nil)
	_ encoding.TextUnmarshaler = (*Ident)(nil)
)

// Empty is the zero-value ident. It is never valid as the name of a
// generated declaration; it only exists so callers can express
// "no name provided yet" before validation runs.
var Empty Ident = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical ident form.
//
// We do *very* conservative transformations:
//
//   - trim surrounding spaces
//   - upper-case the first rune (so "error" becomes "Error")
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Ident value.
//
// Unlike reasons in derrors, idents are never optional: the empty string is
// rejected with ErrIdentInvalid.
func Parse(s string) (Ident, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Ident(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level ident constants in var/const blocks and in tests.
func MustParse(s string) Ident {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

// Validate checks whether the provided Ident is in canonical form.
func Validate(i Ident) error {
	return validate(string(i))
}

// String returns the canonical string representation of the ident.
func (i Ident) String() string {
	return string(i)
}

// MarshalText implements encoding.TextMarshaler.
func (i Ident) MarshalText() ([]byte, error) {
	if err := Validate(i); err != nil {
		return nil, err
	}
	return []byte(i), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (i *Ident) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrIdentInvalid
	}
	if !identRe.MatchString(s) {
		return ErrIdentInvalid
	}
	return nil
}
