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

// Package exclude decides which filesystem paths are kept out of a mirror.
package exclude

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🚫 RuleSet is an immutable set of exclusion rules. A path is excluded when
// any of its segments equals an entry in Dirs, or its basename ends with an
// entry in Suffixes, or its basename equals an entry in Names, or the
// slash-normalized path matches a glob in Patterns.
type RuleSet struct {
	Dirs     []string // directory names matched against every path segment
	Suffixes []string // filename suffixes
	Names    []string // exact filenames
	Patterns []string // doublestar globs matched against the whole path
}

// 🏭 Default returns the rule set used when no configuration overrides it:
// version-control and editor metadata directories plus sync-tool droppings.
func Default() RuleSet {
	return RuleSet{
		Dirs: []string{
			".git",
			".ipynb_checkpoints",
			".vs",
			".virtual_documents",
			".idea",
			".mypy_cache",
			"__pycache__",
		},
		Suffixes: []string{"insyncdl"},
	}
}

// 🔍 Match reports whether path is excluded. The path need not exist; the
// check is purely lexical and never fails.
func (r RuleSet) Match(path string) bool {
	norm := filepath.ToSlash(filepath.Clean(path))
	name := norm
	if idx := strings.LastIndex(norm, "/"); idx >= 0 {
		name = norm[idx+1:]
	}

	for _, segment := range strings.Split(norm, "/") {
		for _, dir := range r.Dirs {
			if segment == dir {
				return true
			}
		}
	}

	for _, suffix := range r.Suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	for _, exact := range r.Names {
		if name == exact {
			return true
		}
	}

	for _, pattern := range r.Patterns {
		// Invalid patterns are rejected by Validate at load time; a pattern
		// that still fails to match here is skipped, keeping Match total.
		if ok, err := doublestar.Match(pattern, norm); err == nil && ok {
			return true
		}
	}

	return false
}

// ✅ Validate checks that every glob in Patterns is well formed.
func (r RuleSet) Validate() error {
	for _, pattern := range r.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclusion pattern: %q", pattern)
		}
	}
	return nil
}
