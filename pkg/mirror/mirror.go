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

// Package mirror makes a destination directory tree's non-excluded file set
// identical to a source tree's.
package mirror

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mirrorpub/mirrorpub/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🪞 Executor applies a mirror plan: stale destination files are deleted
// first, then every source file is copied in, overwriting unconditionally.
type Executor struct {
	status *status.Manager
}

// 🏭 NewExecutor creates an executor reporting through mgr.
func NewExecutor(mgr *status.Manager) *Executor {
	return &Executor{status: mgr}
}

// 🏃 Execute applies the plan. The first I/O failure aborts the remaining
// work; a partially applied plan is acceptable and the next run repairs it.
func (e *Executor) Execute(ctx context.Context, plan *Plan) error {
	logger := zerolog.Ctx(ctx)

	e.status.StartOperation(ctx, len(plan.Deletions)+len(plan.Copies))
	defer e.status.FinishOperation(ctx)

	done := 0

	// Deletions run first so an interrupted run never leaves stale files next
	// to freshly copied ones.
	for _, path := range plan.Deletions {
		logger.Debug().Str("path", path).Msg("removing stale file")
		if err := removeFile(path); err != nil {
			return errors.Errorf("removing %q: %w", path, err)
		}
		e.status.TrackFile(ctx, status.FileInfo{
			Path:   relativeTo(plan.DestRoot, path),
			Status: status.StatusDeleted,
		})
		done++
		e.status.UpdateProgress(ctx, done)
	}

	for _, source := range plan.Copies {
		dest, err := Remap(plan.SourceRoot, plan.DestRoot, source, true)
		if err != nil {
			return errors.Errorf("remapping %q: %w", source, err)
		}
		fileStatus, size, err := copyFile(source, dest)
		if err != nil {
			return errors.Errorf("copying %q: %w", source, err)
		}
		e.status.TrackFile(ctx, status.FileInfo{
			Path:   relativeTo(plan.DestRoot, dest),
			Status: fileStatus,
			Size:   size,
		})
		done++
		e.status.UpdateProgress(ctx, done)
	}

	return nil
}

// removeFile deletes path, treating an already-missing file as satisfied.
func removeFile(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// copyFile copies bytes, mode, and modification time from source to dest,
// overwriting dest unconditionally. It reports whether dest was new, modified,
// or already identical.
func copyFile(source, dest string) (status.FileStatus, int64, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return status.StatusUnknown, 0, err
	}
	sourceInfo, err := os.Stat(source)
	if err != nil {
		return status.StatusUnknown, 0, err
	}

	fileStatus := status.StatusNew
	if existing, err := os.ReadFile(dest); err == nil {
		if bytes.Equal(existing, content) {
			fileStatus = status.StatusUnchanged
		} else {
			fileStatus = status.StatusModified
		}
	}

	if err := os.WriteFile(dest, content, sourceInfo.Mode().Perm()); err != nil {
		return status.StatusUnknown, 0, err
	}
	if err := os.Chmod(dest, sourceInfo.Mode().Perm()); err != nil {
		return status.StatusUnknown, 0, err
	}
	if err := os.Chtimes(dest, sourceInfo.ModTime(), sourceInfo.ModTime()); err != nil {
		return status.StatusUnknown, 0, err
	}

	return fileStatus, int64(len(content)), nil
}

// relativeTo renders path relative to root for display, falling back to the
// absolute path when it cannot be relativized.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
