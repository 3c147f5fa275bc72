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

package apis

import "dirpx.dev/derrgen/ident"

// Artifact is the final, immutable output of one generator invocation: the
// rewritten taxonomy plus its conversion capability, rendered as one
// formatted Go source file ready to substitute for the original annotated
// item.
//
// An Artifact is emitted exactly once; a failed invocation produces no
// Artifact at all (there is no partial or best-effort emission).
type Artifact struct {
	// Type is the taxonomy's name as declared by the author.
	Type ident.Ident

	// Capability is the resolved name under which the conversion capability
	// was declared (the scope name).
	Capability ident.Ident

	// Wrapped lists, in declaration order, the wrapped failure type of every
	// conversion registered in the capability scope. Its length equals the
	// number of emitted conversion realizations.
	Wrapped []string

	// Source is the gofmt-formatted generated Go source.
	Source []byte
}
