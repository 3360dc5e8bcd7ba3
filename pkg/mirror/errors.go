// Copyright 2025 the mirrorpub authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mirror

import "gitlab.com/tozd/go/errors"

var (
	// ⛔ ErrSameSourceDest is returned when source and destination resolve to
	// the same location. Mirroring a tree onto itself would delete it.
	ErrSameSourceDest = errors.Base("source and destination are the same path")

	// ⛔ ErrOutsideRoot is returned when a path handed to Remap is not located
	// under the source root.
	ErrOutsideRoot = errors.Base("path is outside the source root")
)
