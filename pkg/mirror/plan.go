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
	"context"
	"path/filepath"
	"sort"

	"github.com/mirrorpub/mirrorpub/pkg/exclude"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📋 Plan is the derived, transient description of one mirror run: which
// destination files are stale and which source files get copied. It is
// recomputed fully on every invocation; nothing is persisted between runs.
type Plan struct {
	SourceRoot string   // resolved absolute source root
	DestRoot   string   // resolved absolute destination root
	Copies     []string // absolute source paths, copied unconditionally
	Deletions  []string // absolute destination paths with no source counterpart
}

// 🧮 BuildPlan computes the mirror plan for sourceRoot → destRoot. It refuses
// to plan a self-mirror (ErrSameSourceDest) and performs no mutation. The
// deletion set is the destination listing minus the remapped source listing,
// compared by exact equality of cleaned absolute paths.
func BuildPlan(ctx context.Context, sourceRoot, destRoot string, rules exclude.RuleSet) (*Plan, error) {
	logger := zerolog.Ctx(ctx)

	absSource, err := filepath.Abs(sourceRoot)
	if err != nil {
		return nil, errors.Errorf("resolving source %q: %w", sourceRoot, err)
	}
	absDest, err := filepath.Abs(destRoot)
	if err != nil {
		return nil, errors.Errorf("resolving destination %q: %w", destRoot, err)
	}

	if sameLocation(absSource, absDest) {
		return nil, errors.Errorf("%w: %q", ErrSameSourceDest, absSource)
	}

	source, err := Walk(absSource, rules)
	if err != nil {
		return nil, errors.Errorf("listing source: %w", err)
	}
	dest, err := Walk(absDest, rules)
	if err != nil {
		return nil, errors.Errorf("listing destination: %w", err)
	}

	// The paths every source file would occupy inside the destination tree.
	remapped := make(map[string]struct{}, len(source))
	for _, path := range source {
		mapped, err := Remap(absSource, absDest, path, false)
		if err != nil {
			return nil, errors.Errorf("remapping %q: %w", path, err)
		}
		remapped[filepath.Clean(mapped)] = struct{}{}
	}

	plan := &Plan{
		SourceRoot: absSource,
		DestRoot:   absDest,
		Copies:     source,
	}
	for _, path := range dest {
		if _, ok := remapped[path]; !ok {
			plan.Deletions = append(plan.Deletions, path)
		}
	}
	sort.Strings(plan.Copies)
	sort.Strings(plan.Deletions)

	logger.Debug().
		Int("copies", len(plan.Copies)).
		Int("deletions", len(plan.Deletions)).
		Str("source", absSource).
		Str("destination", absDest).
		Msg("mirror plan computed")

	return plan, nil
}

// sameLocation reports whether two cleaned absolute paths resolve to the same
// canonical location. Symlinks are resolved when both paths exist; otherwise
// the comparison falls back to the lexical form. Case sensitivity follows the
// platform filesystem.
func sameLocation(a, b string) bool {
	resolvedA, errA := filepath.EvalSymlinks(a)
	resolvedB, errB := filepath.EvalSymlinks(b)
	if errA == nil && errB == nil {
		return resolvedA == resolvedB
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
