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

package status_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mirrorpub/mirrorpub/pkg/status"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 TestTrackFile checks recording and console output.
func TestTrackFile(t *testing.T) {
	ctx := testContext(t)
	console := &bytes.Buffer{}
	mgr := status.NewManager(console)

	mgr.TrackFile(ctx, status.FileInfo{Path: "a.txt", Status: status.StatusNew, Size: 3})
	mgr.TrackFile(ctx, status.FileInfo{Path: "stale.txt", Status: status.StatusDeleted})

	files := mgr.ListFiles(ctx)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Path, "listing is sorted by path")
	assert.Equal(t, status.StatusNew, files[0].Status)
	assert.Equal(t, "stale.txt", files[1].Path)

	out := console.String()
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "new")
	assert.Contains(t, out, "stale.txt")
	assert.Contains(t, out, "deleted")
}

// 🧪 TestTrackFileOverwrites checks that re-tracking a path keeps one entry.
func TestTrackFileOverwrites(t *testing.T) {
	ctx := testContext(t)
	mgr := status.NewManager(&bytes.Buffer{})

	mgr.TrackFile(ctx, status.FileInfo{Path: "a.txt", Status: status.StatusNew})
	mgr.TrackFile(ctx, status.FileInfo{Path: "a.txt", Status: status.StatusUnchanged})

	files := mgr.ListFiles(ctx)
	require.Len(t, files, 1)
	assert.Equal(t, status.StatusUnchanged, files[0].Status)
}

// 🧪 TestCounts checks the per-status tallies feeding the summary line.
func TestCounts(t *testing.T) {
	ctx := testContext(t)
	mgr := status.NewManager(&bytes.Buffer{})

	mgr.TrackFile(ctx, status.FileInfo{Path: "a", Status: status.StatusNew})
	mgr.TrackFile(ctx, status.FileInfo{Path: "b", Status: status.StatusNew})
	mgr.TrackFile(ctx, status.FileInfo{Path: "c", Status: status.StatusModified})
	mgr.TrackFile(ctx, status.FileInfo{Path: "d", Status: status.StatusDeleted})

	counts := mgr.Counts()
	assert.Equal(t, 2, counts[status.StatusNew])
	assert.Equal(t, 1, counts[status.StatusModified])
	assert.Equal(t, 1, counts[status.StatusDeleted])
	assert.Zero(t, counts[status.StatusUnchanged])
}

// 🧪 TestFileStatusString checks the display names.
func TestFileStatusString(t *testing.T) {
	assert.Equal(t, "new", status.StatusNew.String())
	assert.Equal(t, "modified", status.StatusModified.String())
	assert.Equal(t, "unchanged", status.StatusUnchanged.String())
	assert.Equal(t, "deleted", status.StatusDeleted.String())
	assert.Equal(t, "unknown", status.StatusUnknown.String())
}
