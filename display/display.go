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

package display

import (
	"errors"
	"fmt"
	"strings"
)

// Template is the canonical, validated representation of a case display
// template.
//
// The zero value ("") means "no custom display declared" and is valid to
// store in case models. Callers that require a non-empty template should
// check IsZero at the call site.
type Template string

// MaxLength is the maximum length for a valid template. 256 characters is
// enough for a descriptive one-line message with a few placeholders while
// still preventing unbounded or accidental long strings.
const MaxLength = 256

var (
	// ErrTemplateInvalid is returned when a template's placeholder syntax is
	// malformed: an unclosed "{", a stray "}", or a placeholder that is not a
	// valid field name.
	ErrTemplateInvalid = errors.New("derrgen: invalid display template")

	// ErrTemplateTooLong is returned when a template exceeds MaxLength.
	ErrTemplateTooLong = errors.New("derrgen: display template too long")
)

// Empty is the zero-value template, meaning "no custom display declared".
var Empty Template = ""

// Parse validates a user-provided template string and returns it as a
// canonical Template value.
//
// Parse accepts the empty string and returns display.Empty without error.
// This is what makes Template an "optional" part of the case model.
func Parse(s string) (Template, error) {
	if s == "" {
		return Empty, nil
	}
	if len(s) > MaxLength {
		return Empty, ErrTemplateTooLong
	}
	if _, err := scan(s); err != nil {
		return Empty, err
	}
	return Template(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring template constants in var blocks and in tests.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Template {
	tpl, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if tpl == Empty {
		panic("derrgen: empty template in MustParse")
	}
	return tpl
}

// Verbatim builds the template that renders a single field with no
// surrounding text. This is the display the synthesizer attaches to
// contextual cases ("render the message field verbatim").
func Verbatim(field string) Template {
	return Template("{" + field + "}")
}

// Validate checks whether the provided Template is well-formed.
//
// The empty template ("") is considered valid here, because the whole point
// of this type is to be optional.
func Validate(tpl Template) error {
	if tpl == Empty {
		return nil
	}
	if len(tpl) > MaxLength {
		return ErrTemplateTooLong
	}
	_, err := scan(string(tpl))
	return err
}

// IsZero reports whether the template is the "not declared" zero value.
func (tpl Template) IsZero() bool { return tpl == Empty }

// String returns the raw template text.
func (tpl Template) String() string { return string(tpl) }

// Fields returns the placeholder names referenced by the template, in order
// of appearance. A name referenced twice appears twice; deduplication is the
// caller's concern. The template must be valid; invalid templates yield nil.
func (tpl Template) Fields() []string {
	fields, err := scan(string(tpl))
	if err != nil {
		return nil
	}
	return fields
}

// Format converts the template into a fmt.Sprintf format string plus the
// ordered list of referenced field names. Each placeholder becomes a "%v"
// verb and literal percent signs are escaped, so the result is safe to feed
// to fmt.Sprintf together with the named fields' values.
//
// Example:
//
//	Template("read {Path}: 100%").Format()
//	  => "read %v: 100%%", []string{"Path"}
func (tpl Template) Format() (format string, fields []string) {
	s := string(tpl)
	var b strings.Builder
	for i := 0; i < len(s); {
		switch s[i] {
		case '%':
			b.WriteString("%%")
			i++
		case '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				// Validation rejects this; keep the text as-is if it slips through.
				b.WriteString(s[i:])
				return b.String(), fields
			}
			fields = append(fields, s[i+1:i+end])
			b.WriteString("%v")
			i += end + 1
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String(), fields
}

// scan walks the template once, validating placeholder syntax and collecting
// the referenced field names in order.
func scan(s string) ([]string, error) {
	var fields []string
	for i := 0; i < len(s); {
		switch s[i] {
		case '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed %q at offset %d", ErrTemplateInvalid, "{", i)
			}
			name := s[i+1 : i+end]
			if !validFieldName(name) {
				return nil, fmt.Errorf("%w: bad placeholder %q", ErrTemplateInvalid, "{"+name+"}")
			}
			fields = append(fields, name)
			i += end + 1
		case '}':
			return nil, fmt.Errorf("%w: stray %q at offset %d", ErrTemplateInvalid, "}", i)
		default:
			i++
		}
	}
	return fields, nil
}

// validFieldName reports whether name can refer to a case field.
// Rules:
//   - empty names are invalid;
//   - the name must start with an ASCII letter;
//   - the rest must be ASCII letters or digits.
func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
