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
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  Error  ", "Error"},
		{"capitalize first", "error", "Error"},
		{"already canonical", "WithContext", "WithContext"},
		{"single letter", "e", "E"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ident
	}{
		{"simple", "Error", Ident("Error")},
		{"with spaces", "  Reqwest  ", Ident("Reqwest")},
		{"lowercase first", "withContext", Ident("WithContext")},
		{"digits", "ContextErr1", Ident("ContextErr1")},
		{"min length", "E", Ident("E")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"starts with digit", "1Error"},
		{"underscore", "With_Context"},
		{"dot", "pkg.Error"},
		{"space inside", "With Context"},
		{"too long", strings.Repeat("A", MaxLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrIdentInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrIdentInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Ident{
		"Error",
		"Reqwest",
		"ContextErr1",
		"E",
	}
	for _, i := range valid {
		if err := Validate(i); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", i, err)
		}
	}

	invalid := []Ident{
		"",             // empty
		"error",        // unexported
		"With_Context", // underscore
		"1Error",       // digit first
	}
	for _, i := range invalid {
		if err := Validate(i); err == nil {
			t.Fatalf("Validate(%q) expected error", i)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("not a name ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	i := MustParse("Error")
	if i != Ident("Error") {
		t.Fatalf("MustParse(valid) = %q, want %q", i, "Error")
	}
}

func TestIdent_TextRoundTrip(t *testing.T) {
	var i Ident
	if err := i.UnmarshalText([]byte("  reqwest ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if i != Ident("Reqwest") {
		t.Fatalf("UnmarshalText = %q, want %q", i, "Reqwest")
	}
	b, err := i.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "Reqwest" {
		t.Fatalf("MarshalText = %q, want %q", b, "Reqwest")
	}
}
