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

package derrgen

// Option is a functional option for one Generate invocation. Options affect
// only how the artifact is rendered, never the taxonomy's semantics; those
// live on the TypeDefinition itself.
type Option func(*config)

// WithPackage sets the package name the generated file declares. The default
// is the lowercased taxonomy name. Validation happens at emit time; an
// invalid name fails the invocation with emit.ErrBadPackage.
func WithPackage(name string) Option {
	return func(c *config) {
		c.pkg = name
	}
}

// WithHeader adds extra comment lines under the "Code generated" marker line,
// typically the provenance of the taxonomy source:
//
//	derrgen.WithHeader("Source: taxonomy.yaml")
func WithHeader(lines ...string) Option {
	return func(c *config) {
		c.header = append(c.header, lines...)
	}
}
