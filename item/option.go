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

package item

import (
	"fmt"

	"dirpx.dev/derrgen/ident"
)

// Option is a scope-level option applied while building a TypeDefinition.
// Options run after structural validation and may themselves fail, which
// surfaces as a MalformedItemError from New/NewStruct.
type Option func(*TypeDefinition) error

// WithCapability overrides the name of the generated conversion capability
// for this taxonomy. The name determines the capability scope: two taxonomies
// generated into the same package with the same capability name will collide
// at compile time, which is the intended disambiguation pressure.
func WithCapability(name string) Option {
	return func(d *TypeDefinition) error {
		n, err := ident.Parse(name)
		if err != nil {
			return fmt.Errorf("capability name %q is not a valid exported identifier", name)
		}
		d.capability = n
		return nil
	}
}

// WithDoc attaches a one-line description to the taxonomy, carried into the
// emitted sealed interface's doc comment.
func WithDoc(doc string) Option {
	return func(d *TypeDefinition) error {
		d.doc = doc
		return nil
	}
}

// applyOptions runs all options in order, stopping at the first failure.
func applyOptions(d *TypeDefinition, opts []Option) error {
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return err
		}
	}
	return nil
}
