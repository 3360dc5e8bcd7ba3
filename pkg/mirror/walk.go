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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mirrorpub/mirrorpub/pkg/exclude"
	"gitlab.com/tozd/go/errors"
)

// 📂 Walk lists every non-excluded regular file under root, recursively, as
// cleaned absolute paths. Excluded directories are pruned without descending
// into them. A root that does not exist yields an empty listing, so a
// destination that has never been mirrored into is simply treated as empty.
func Walk(root string, rules exclude.RuleSet) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving %q: %w", root, err)
	}

	if _, err := os.Stat(absRoot); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var files []string
	walkErr := filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != absRoot && rules.Match(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if rules.Match(path) {
			return nil
		}
		files = append(files, filepath.Clean(path))
		return nil
	})
	if walkErr != nil {
		return nil, errors.Errorf("listing files under %q: %w", absRoot, walkErr)
	}
	return files, nil
}
