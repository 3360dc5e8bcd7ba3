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

// Package status tracks per-file outcomes of a mirror run and reports
// progress to the user.
package status

import (
	"context"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 FileStatus represents what happened to a file during a mirror run.
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusNew                  // file did not exist in the destination
	StatusModified             // file existed with different content
	StatusUnchanged            // file existed with identical content
	StatusDeleted              // stale file removed from the destination
)

// String returns a string representation of FileStatus.
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the recorded outcome for a single file.
type FileInfo struct {
	Path   string     // path relative to the destination root
	Status FileStatus // what happened to it
	Size   int64      // size in bytes after the operation, 0 for deletions
}

// 🔧 Manager records file outcomes and operation progress.
type Manager struct {
	console io.Writer

	mu    sync.RWMutex
	files map[string]FileInfo

	total     int
	processed int
}

// 🏭 NewManager creates a manager writing per-file lines to console. A nil
// console defaults to stdout.
func NewManager(console io.Writer) *Manager {
	if console == nil {
		console = os.Stdout
	}
	return &Manager{
		console: console,
		files:   make(map[string]FileInfo),
	}
}

// 📝 TrackFile records the outcome for a file and prints its console line.
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	m.files[info.Path] = info
	m.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Str("path", info.Path).
		Stringer("status", info.Status).
		Int64("size", info.Size).
		Msg("file tracked")

	io.WriteString(m.console, formatFileLine(info)+"\n")
}

// 📜 ListFiles returns all tracked files sorted by path.
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// 🚦 StartOperation begins progress tracking for an operation touching total
// files.
func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	m.total = total
	m.processed = 0
	m.mu.Unlock()

	zerolog.Ctx(ctx).Debug().Int("total", total).Msg("operation started")
}

// 📈 UpdateProgress records that processed files have been handled so far.
func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	m.processed = processed
	m.mu.Unlock()
}

// 🏁 FinishOperation ends progress tracking.
func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.RLock()
	processed, total := m.processed, m.total
	m.mu.RUnlock()

	zerolog.Ctx(ctx).Debug().
		Int("processed", processed).
		Int("total", total).
		Msg("operation finished")
}

// 🧮 Counts returns how many tracked files carry each status.
func (m *Manager) Counts() map[FileStatus]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[FileStatus]int)
	for _, info := range m.files {
		counts[info.Status]++
	}
	return counts
}
