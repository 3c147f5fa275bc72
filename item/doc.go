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

// Package item models the annotated error taxonomy that derrgen consumes.
//
// A TypeDefinition is built once per generator invocation from the structured
// front end's output (never from raw source text), validated on construction
// and immutable afterwards. It carries:
//
//   - the taxonomy name;
//   - the ordered sequence of cases (one per enum-style variant, or a single
//     implicit case for a struct-shaped taxonomy);
//   - scope-level options, today just the capability name override.
//
// Each Case carries its name, its ordered field list, its declared display
// template (optional) and the contextual marker. Classification of cases into
// contextual/opaque kinds happens later, in the classify package; this
// package only rejects items that are structurally not a taxonomy at all
// (ErrMalformedItem).
package item
