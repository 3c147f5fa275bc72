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

import "dirpx.dev/derrgen/item"

// FrontEnd is anything that can produce a structured taxonomy model for the
// generator. The generator itself never sees raw text; parsing and decoding
// always happen behind this interface (e.g. the YAML front end in the
// taxonomy package).
type FrontEnd interface {
	// Load reads one annotated item from the named source and returns its
	// validated model. Implementations report structural problems with
	// errors matching item.ErrMalformedItem.
	Load(name string) (*item.TypeDefinition, error)
}

// ContextCase is the contract every emitted contextual case satisfies. It is
// what downstream error-handling code (and the derrors ecosystem at large)
// relies on: the original failure stays reachable as the causal source, and
// the attached message is retrievable verbatim.
type ContextCase interface {
	error

	// Unwrap returns the wrapped original failure, enabling
	// errors.Is / errors.As chains through the case.
	Unwrap() error

	// ContextMessage returns the human-readable context attached at the
	// conversion call site, exactly as it was stringified.
	ContextMessage() string
}
