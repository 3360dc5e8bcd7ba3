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

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔀 Remap translates a file path under sourceRoot into the path it occupies
// under destRoot, preserving the relative structure:
//
//	Remap("/src", "/dst", "/src/x/y.md", false) == "/dst/x/y.md"
//
// The computation is purely lexical; none of the paths need to exist. When
// createDirs is true the parent directories of the result are created,
// succeeding if they already exist. A path that is not under sourceRoot fails
// with ErrOutsideRoot.
func Remap(sourceRoot, destRoot, path string, createDirs bool) (string, error) {
	rel, err := filepath.Rel(sourceRoot, path)
	if err != nil {
		return "", errors.Errorf("%w: %q cannot be made relative to %q", ErrOutsideRoot, path, sourceRoot)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("%w: %q is not under %q", ErrOutsideRoot, path, sourceRoot)
	}

	dest := filepath.Join(destRoot, rel)
	if createDirs {
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return "", errors.Errorf("creating parent directories of %q: %w", dest, err)
		}
	}
	return dest, nil
}
