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

// Package emit renders the generated artifact: the rewritten taxonomy (one
// case struct per augmented case, plus a sealed interface for enum-style
// items) followed by the conversion capability (one generic function per
// scope, one concrete realization per registry entry).
//
// Rendering is template-driven and purely generative: every decision was
// already made by the classifier, the synthesizer and the registry, so the
// only failure modes here are internal (a template or formatting bug), never
// user input. The rendered source goes through go/format before it leaves
// this package, which both normalizes layout and acts as a syntax check on
// the emitted code.
//
// Emitted shape, in fixed order:
//
//  1. the sealed interface (enum-style items only);
//  2. the case structs with Error/Unwrap/ContextMessage methods;
//  3. the capability declaration — a generic function whose body is the
//     generation-time-built dispatch table over wrapped failure types;
//  4. one unexported wrap function per registry entry.
package emit
