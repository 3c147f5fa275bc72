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

// Package classify validates and reclassifies taxonomy cases into the two
// kinds the generator distinguishes:
//
//   - Contextual — the case wraps exactly one underlying failure type and
//     receives an attached message at conversion time;
//   - Opaque — the case is fully author-controlled and passes through the
//     pipeline untouched.
//
// Classification is the first of the two fallible pipeline stages (the other
// is registration). A case marked contextual that declares zero fields, more
// than one field, or a custom display template is rejected with an
// InvalidCaseError naming the case and the violated rule; the whole item
// aborts, nothing partial is emitted.
package classify
