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

// Package display provides parsing and validation for case display templates.
//
// A "display template" describes how a case renders itself as a string.
// Templates are plain text with `{Field}` placeholders referring to the
// case's fields by name:
//
//	"read {Path}: {Cause}"
//	"connection refused"
//	"{Msg}"
//
// Templates are passed through to the emitted Error() method mostly verbatim;
// this package only checks that the placeholder syntax is well-formed and
// extracts the referenced field names so the emitter can turn a template into
// a fmt.Sprintf call.
//
// The empty template ("") is valid and means "no custom display declared".
// Whether an empty template is acceptable for a given case is decided by the
// classifier, not here.
package display
