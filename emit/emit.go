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

package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"dirpx.dev/derrgen/classify"
	"dirpx.dev/derrgen/display"
	"dirpx.dev/derrgen/item"
	"dirpx.dev/derrgen/registry"
	"dirpx.dev/derrgen/synth"
)

// Input is everything the emitter needs, produced by the earlier pipeline
// stages. All fields are required.
type Input struct {
	// Package is the Go package the generated file declares. It must be a
	// valid lowercase package identifier.
	Package string

	// Header holds optional extra comment lines placed under the
	// "Code generated" marker, one line per element, without the "// ".
	Header []string

	// Def is the taxonomy being generated.
	Def *item.TypeDefinition

	// Cases is the synthesizer's output, in declaration order.
	Cases []synth.AugmentedCase

	// Scope is the populated capability registry for Def.
	Scope *registry.Scope
}

var (
	// ErrBadPackage is returned when the target package name is not a valid
	// lowercase Go package identifier.
	ErrBadPackage = errors.New("derrgen: invalid target package name")
)

// packageRe accepts conventional Go package names: lowercase letters, digits
// and underscore, starting with a letter.
var packageRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// File renders and formats the complete generated source file.
//
// Rendering is infallible for valid pipeline output; errors here mean either
// a bad target package name or an internal template/formatting bug, in which
// case the raw rendering is not returned (nothing partial is emitted).
func File(in Input) ([]byte, error) {
	if !packageRe.MatchString(in.Package) {
		return nil, fmt.Errorf("%w: %q", ErrBadPackage, in.Package)
	}

	data := build(in)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("emit: render: %w", err)
	}

	// go/format doubles as a syntax check on the emitted code: if the
	// taxonomy smuggled in a broken type expression, it surfaces here
	// rather than in the caller's build.
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("emit: format generated source: %w", err)
	}
	return src, nil
}

// fileData is the template's root data model.
type fileData struct {
	Header  []string
	Package string
	Imports []string
	Type    typeData
	Cap     capData
}

type typeData struct {
	Name   string
	Sealed bool
	Marker string
	Cases  []caseData
}

type caseData struct {
	StructName string
	Doc        string
	Fields     []fieldData
	Marker     string
	ErrorDoc   string
	ErrorBody  string
	Unwrap     string
	Msg        string
}

type fieldData struct {
	Name string
	Type string
}

type capData struct {
	Name    string
	Doc     []string
	Entries []capEntry
}

type capEntry struct {
	Wrapped string
	Func    string
	Struct  string
	Cause   string
	Msg     string
}

// build turns pipeline output into the flat template data model, precomputing
// every per-case string so the template stays structural.
func build(in Input) fileData {
	typeName := in.Def.Name().String()
	sealed := !in.Def.IsStruct()
	marker := ""
	if sealed {
		marker = "is" + typeName
	}

	needFmt := false
	imports := map[string]struct{}{}

	var cases []caseData
	for _, ac := range in.Cases {
		cd, usesFmt := buildCase(typeName, marker, ac, in.Def.IsStruct())
		if usesFmt {
			needFmt = true
		}
		for _, f := range ac.Case.Fields {
			if f.Import != "" {
				imports[f.Import] = struct{}{}
			}
		}
		cases = append(cases, cd)
	}

	capName := in.Def.Capability().String()
	var entries []capEntry
	for _, e := range in.Scope.Entries() {
		needFmt = true // every realization stringifies via fmt.Sprint
		entries = append(entries, capEntry{
			Wrapped: e.Wrapped,
			Func:    "wrap" + structName(typeName, e.Case.Case.Name.String(), in.Def.IsStruct()),
			Struct:  structName(typeName, e.Case.Case.Name.String(), in.Def.IsStruct()),
			Cause:   e.Case.Wrapped.Name,
			Msg:     synth.MessageField,
		})
	}

	if needFmt {
		imports["fmt"] = struct{}{}
	}
	var importList []string
	for p := range imports {
		importList = append(importList, p)
	}
	sort.Strings(importList)

	return fileData{
		Header:  in.Header,
		Package: in.Package,
		Imports: importList,
		Type: typeData{
			Name:   typeName,
			Sealed: sealed,
			Marker: marker,
			Cases:  cases,
		},
		Cap: capData{
			Name: capName,
			Doc: []string{
				fmt.Sprintf("%s attaches a human-readable context message to a failing result,", capName),
				fmt.Sprintf("converting registered failure types into their %s cases. A nil error", typeName),
				"and failure types without a registered case pass through unchanged.",
			},
			Entries: entries,
		},
	}
}

// structName decides the emitted struct's name: "<Type><Case>" for
// enum-style items, the bare item name for struct-shaped ones (where the
// implicit case already carries the item's name).
func structName(typeName, caseName string, structItem bool) string {
	if structItem {
		return typeName
	}
	return typeName + caseName
}

// buildCase precomputes the rendered form of one augmented case. It also
// reports whether the case's Error() body calls into the fmt package, so the
// import block stays in sync with actual use.
func buildCase(typeName, marker string, ac synth.AugmentedCase, structItem bool) (caseData, bool) {
	sn := structName(typeName, ac.Case.Name.String(), structItem)

	cd := caseData{
		StructName: sn,
		Marker:     marker,
	}
	for _, f := range ac.Case.Fields {
		cd.Fields = append(cd.Fields, fieldData{Name: f.Name, Type: f.Type})
		if f.Source {
			cd.Unwrap = f.Name
		}
	}

	// Doc line.
	switch {
	case ac.Case.Doc != "":
		cd.Doc = ac.Case.Doc
	case ac.Kind == classify.Contextual:
		cd.Doc = fmt.Sprintf("%s wraps %s with an attached context message.", sn, ac.Wrapped.Type)
	case structItem:
		cd.Doc = fmt.Sprintf("%s is a generated error type.", sn)
	default:
		cd.Doc = fmt.Sprintf("%s is the %s case of the %s taxonomy.", sn, ac.Case.Name, typeName)
	}

	// Error() body and its doc line.
	var usesFmt bool
	switch {
	case ac.Kind == classify.Contextual:
		cd.ErrorDoc = "Error renders the attached context message verbatim."
		cd.ErrorBody, usesFmt = errorBody(ac.Case.Display)
		cd.Msg = synth.MessageField
	case !ac.Case.Display.IsZero():
		cd.ErrorDoc = "Error renders the case's declared display template."
		cd.ErrorBody, usesFmt = errorBody(ac.Case.Display)
	case cd.Unwrap != "":
		cd.ErrorDoc = "Error reports the causal source's message."
		cd.ErrorBody = fmt.Sprintf("return e.%s.Error()", cd.Unwrap)
	default:
		cd.ErrorDoc = "Error implements the built-in error interface."
		cd.ErrorBody = "return " + strconv.Quote(sn)
	}

	return cd, usesFmt
}

// errorBody turns a display template into the Error() method's return
// statement: a fmt.Sprintf call when the template references fields, a plain
// string literal otherwise. The second return reports whether the body calls
// into the fmt package.
func errorBody(tpl display.Template) (string, bool) {
	formatStr, fields := tpl.Format()
	if len(fields) == 0 {
		return "return " + strconv.Quote(tpl.String()), false
	}
	args := make([]string, 0, len(fields))
	for _, f := range fields {
		args = append(args, "e."+f)
	}
	return fmt.Sprintf("return fmt.Sprintf(%s, %s)", strconv.Quote(formatStr), strings.Join(args, ", ")), true
}
