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

// Package taxonomy is the structured front end for derrgen: it decodes a
// YAML taxonomy declaration into the generator's item model. The generator
// core never sees this file format; it consumes the *item.TypeDefinition
// built here.
//
// A taxonomy file looks like:
//
//	name: Error
//	capability: WithContext   # optional override
//	cases:
//	  - name: Reqwest
//	    contextual: true
//	    fields:
//	      - {name: Cause, type: "*NetworkError", import: "example.com/net"}
//	  - name: Parse
//	    display: "parse {Input}: invalid"
//	    fields:
//	      - {name: Input, type: string}
//
// Decoding is strict: unknown keys are rejected, so typos in markers like
// "contextual" fail loudly instead of silently producing an opaque case.
//
// The generated capability dispatches on the exact declared type of each
// contextual field, so wrapped types should be concrete failure types
// (typically pointers like "*NetworkError"). The bare "error" interface is
// rejected at classification time; a named interface type is accepted but
// matches every implementation the type switch reaches it with, in
// declaration order.
package taxonomy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dirpx.dev/derrgen/apis"
	"dirpx.dev/derrgen/display"
	"dirpx.dev/derrgen/ident"
	"dirpx.dev/derrgen/item"
)

// file mirrors the YAML document layout.
type file struct {
	Name       string     `yaml:"name"`
	Doc        string     `yaml:"doc"`
	Capability string     `yaml:"capability"`
	Struct     bool       `yaml:"struct"`
	Cases      []caseSpec `yaml:"cases"`
}

type caseSpec struct {
	Name       string      `yaml:"name"`
	Doc        string      `yaml:"doc"`
	Contextual bool        `yaml:"contextual"`
	Display    string      `yaml:"display"`
	Fields     []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Import string `yaml:"import"`
	Source bool   `yaml:"source"`
}

// Decode reads one YAML taxonomy document and builds its validated model.
// Structural problems surface as item.ErrMalformedItem; YAML syntax problems
// as decode errors.
func Decode(r io.Reader) (*item.TypeDefinition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("taxonomy: decode: %w", err)
	}
	return f.build()
}

// Load reads and decodes the taxonomy file at path.
func Load(path string) (*item.TypeDefinition, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: open %s: %w", path, err)
	}
	defer fh.Close()

	def, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Loader resolves taxonomy names relative to a directory. It implements
// apis.FrontEnd, so build tooling can treat "the YAML front end" as an
// opaque model source.
type Loader struct {
	// Dir is the directory taxonomy names resolve against. Empty means the
	// current working directory.
	Dir string
}

var _ apis.FrontEnd = Loader{}

// Load implements apis.FrontEnd.
func (l Loader) Load(name string) (*item.TypeDefinition, error) {
	return Load(filepath.Join(l.Dir, name))
}

// build maps the decoded document onto the item model; all validation lives
// in the item package.
func (f *file) build() (*item.TypeDefinition, error) {
	var opts []item.Option
	if f.Doc != "" {
		opts = append(opts, item.WithDoc(f.Doc))
	}
	if f.Capability != "" {
		opts = append(opts, item.WithCapability(f.Capability))
	}

	cases := make([]item.Case, 0, len(f.Cases))
	for _, cs := range f.Cases {
		c := item.Case{
			// ident validation happens in item.New; the raw name is carried
			// through unchecked here.
			Name:       ident.Ident(cs.Name),
			Doc:        cs.Doc,
			Contextual: cs.Contextual,
			Display:    display.Template(cs.Display),
		}
		for _, fs := range cs.Fields {
			c.Fields = append(c.Fields, item.Field{
				Name:   fs.Name,
				Type:   fs.Type,
				Import: fs.Import,
				Source: fs.Source,
			})
		}
		cases = append(cases, c)
	}

	if f.Struct {
		if len(cases) != 1 {
			return nil, &item.MalformedItemError{
				Item:   f.Name,
				Reason: "a struct-shaped taxonomy declares exactly one case",
			}
		}
		return item.NewStruct(f.Name, cases[0], opts...)
	}
	return item.New(f.Name, cases, opts...)
}
