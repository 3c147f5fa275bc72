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

// Package ident provides parsing, normalization and validation for the
// exported Go identifiers that derrgen emits: taxonomy names, case names and
// capability names.
//
// An "ident" is the name under which a generated declaration becomes visible
// to the surrounding package. Idents are meant to be:
//
//   - exported (first character is an uppercase ASCII letter);
//   - ASCII letters and digits only (no underscores, to follow Go naming
//     conventions for exported identifiers);
//   - short enough to stay readable in generated call sites.
//
// IMPORTANT: Empty idents ("") are NOT allowed. Every taxonomy, case and
// capability MUST have a non-empty name.
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package ident
