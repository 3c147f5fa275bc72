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
	"errors"
	"go/format"
	"strings"
	"testing"

	"dirpx.dev/derrgen/classify"
	"dirpx.dev/derrgen/ident"
	"dirpx.dev/derrgen/item"
	"dirpx.dev/derrgen/registry"
	"dirpx.dev/derrgen/synth"
)

// pipeline runs classify/synthesize/register for a prebuilt definition, so
// the emitter tests exercise exactly what Generate would hand them.
func pipeline(t *testing.T, def *item.TypeDefinition) ([]synth.AugmentedCase, *registry.Scope) {
	t.Helper()
	cc, err := classify.Classify(def)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	augmented := synth.Augment(cc)
	scope, err := registry.Collect(def.Capability(), augmented)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return augmented, scope
}

func render(t *testing.T, in Input) string {
	t.Helper()
	src, err := File(in)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	return string(src)
}

// A struct-shaped item with the capability name overridden must declare the
// capability under that exact name and contain exactly one conversion.
func TestFile_StructItemWithCapabilityOverride(t *testing.T) {
	def, err := item.NewStruct("FetchError", item.Case{
		Fields:     []item.Field{{Name: "Cause", Type: "*IoFailure"}},
		Contextual: true,
	}, item.WithCapability("ContextErr1"))
	if err != nil {
		t.Fatalf("item.NewStruct: %v", err)
	}
	augmented, scope := pipeline(t, def)

	got := render(t, Input{Package: "fetch", Def: def, Cases: augmented, Scope: scope})

	if !strings.Contains(got, "func ContextErr1[T any](v T, err error, context any) (T, error) {") {
		t.Fatalf("capability not declared under the overridden name:\n%s", got)
	}
	if n := strings.Count(got, "func wrap"); n != 1 {
		t.Fatalf("conversion realizations = %d, want exactly 1:\n%s", n, got)
	}
	// Struct-shaped items emit no sealed interface and no marker methods.
	if strings.Contains(got, "interface {") || strings.Contains(got, "isFetchError") {
		t.Fatalf("struct-shaped item must not emit a sealed interface:\n%s", got)
	}
	if !strings.Contains(got, "type FetchError struct {") {
		t.Fatalf("struct item must keep its own name:\n%s", got)
	}
}

func TestFile_EnumEmitsSealedInterfaceAndMarkers(t *testing.T) {
	def, err := item.New("Error", []item.Case{
		{Name: ident.MustParse("Reqwest"), Fields: []item.Field{{Name: "Cause", Type: "*NetworkError"}}, Contextual: true},
		{Name: ident.MustParse("Parse"), Fields: []item.Field{{Name: "Input", Type: "string"}}, Display: "parse {Input}: invalid"},
	})
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	augmented, scope := pipeline(t, def)

	got := render(t, Input{Package: "fetch", Def: def, Cases: augmented, Scope: scope})

	for _, want := range []string{
		"type Error interface {",
		"isError()",
		"type ErrorReqwest struct {",
		"func (e *ErrorReqwest) isError() {}",
		"func (e *ErrorReqwest) Unwrap() error { return e.Cause }",
		"func (e *ErrorReqwest) ContextMessage() string { return e.Msg }",
		`func (e *ErrorParse) Error() string { return fmt.Sprintf("parse %v: invalid", e.Input) }`,
		"case *NetworkError:",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated source missing %q:\n%s", want, got)
		}
	}
	// The opaque case gains no conversion and no context accessor.
	if strings.Contains(got, "wrapErrorParse") || strings.Contains(got, "func (e *ErrorParse) ContextMessage") {
		t.Fatalf("opaque case leaked contextual machinery:\n%s", got)
	}
}

func TestFile_OpaqueDisplayVariants(t *testing.T) {
	def, err := item.New("Error", []item.Case{
		{Name: ident.MustParse("Refused"), Display: "connection refused"},
		{Name: ident.MustParse("Wrapped"), Fields: []item.Field{{Name: "Cause", Type: "error", Source: true}}},
		{Name: ident.MustParse("Blank")},
		{Name: ident.MustParse("Hint"), Display: "call fmt.Println first"},
	})
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	augmented, scope := pipeline(t, def)

	got := render(t, Input{Package: "fetch", Def: def, Cases: augmented, Scope: scope})

	for _, want := range []string{
		// No placeholders: a plain string literal, no fmt call.
		`func (e *ErrorRefused) Error() string { return "connection refused" }`,
		// No display but a causal source: defer to the cause.
		`func (e *ErrorWrapped) Error() string { return e.Cause.Error() }`,
		`func (e *ErrorWrapped) Unwrap() error { return e.Cause }`,
		// Neither: the struct name is the last resort.
		`func (e *ErrorBlank) Error() string { return "ErrorBlank" }`,
		// A fieldless case collapses to an empty struct.
		`type ErrorBlank struct{}`,
		// A placeholder-free template stays a literal even when its text
		// mentions the fmt package.
		`func (e *ErrorHint) Error() string { return "call fmt.Println first" }`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated source missing %q:\n%s", want, got)
		}
	}
	// No contextual cases: no dispatch table, and nothing imports fmt.
	if strings.Contains(got, "switch cause := err.(type)") {
		t.Fatalf("dispatch table emitted without registry entries:\n%s", got)
	}
	if strings.Contains(got, `"fmt"`) {
		t.Fatalf("fmt imported but never used:\n%s", got)
	}
}

func TestFile_ImportsCollected(t *testing.T) {
	def, err := item.New("Error", []item.Case{
		{Name: ident.MustParse("Net"), Fields: []item.Field{{Name: "Cause", Type: "*net.OpError", Import: "net"}}, Contextual: true},
		{Name: ident.MustParse("Path"), Fields: []item.Field{{Name: "Cause", Type: "*fs.PathError", Import: "io/fs"}}, Contextual: true},
	})
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	augmented, scope := pipeline(t, def)

	got := render(t, Input{Package: "fetch", Def: def, Cases: augmented, Scope: scope})

	for _, want := range []string{`"fmt"`, `"io/fs"`, `"net"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated source missing import %s:\n%s", want, got)
		}
	}
	// Deterministic: sorted import order.
	if strings.Index(got, `"fmt"`) > strings.Index(got, `"io/fs"`) ||
		strings.Index(got, `"io/fs"`) > strings.Index(got, `"net"`) {
		t.Fatalf("imports not sorted:\n%s", got)
	}
}

func TestFile_BadPackage(t *testing.T) {
	def, err := item.New("Error", []item.Case{{Name: ident.MustParse("Blank")}})
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	augmented, scope := pipeline(t, def)

	for _, pkg := range []string{"", "Fetch", "1pkg", "my-pkg"} {
		_, err := File(Input{Package: pkg, Def: def, Cases: augmented, Scope: scope})
		if !errors.Is(err, ErrBadPackage) {
			t.Fatalf("package %q: error = %v, want ErrBadPackage", pkg, err)
		}
	}
}

// The emitted source must survive go/format untouched on a second pass,
// i.e. File returns canonical gofmt output.
func TestFile_OutputIsGofmtStable(t *testing.T) {
	def, err := item.New("Error", []item.Case{
		{Name: ident.MustParse("Io"), Fields: []item.Field{{Name: "Cause", Type: "*IoError"}}, Contextual: true},
	})
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	augmented, scope := pipeline(t, def)

	first := render(t, Input{Package: "fetch", Def: def, Cases: augmented, Scope: scope})

	reformatted, err := format.Source([]byte(first))
	if err != nil {
		t.Fatalf("format.Source on emitted output: %v", err)
	}
	if first != string(reformatted) {
		t.Fatal("emitted source is not canonical gofmt output")
	}

	again := render(t, Input{Package: "fetch", Def: def, Cases: augmented, Scope: scope})
	if first != again {
		t.Fatal("emission is not deterministic")
	}
}
