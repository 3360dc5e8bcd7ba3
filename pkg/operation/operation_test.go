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

package operation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mirrorpub/mirrorpub/pkg/config"
	"github.com/mirrorpub/mirrorpub/pkg/operation"
	"github.com/mirrorpub/mirrorpub/pkg/status"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// 🧪 fakeVCS records git invocations.
type fakeVCS struct {
	calls [][]string
	dirs  []string
	err   error
}

func (f *fakeVCS) Run(ctx context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	f.dirs = append(f.dirs, dir)
	return "", f.err
}

// 🧪 createTestEnv creates a source/destination pair and wired options.
func createTestEnv(t *testing.T) (context.Context, operation.Options, *fakeVCS, *bytes.Buffer) {
	t.Helper()
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "src")
	dest := filepath.Join(tmpDir, "dst")
	require.NoError(t, os.MkdirAll(source, 0o755))

	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	cfg := &config.Config{
		Source:      source,
		Destination: dest,
	}
	require.NoError(t, cfg.Validate())

	vcsRunner := &fakeVCS{}
	out := &bytes.Buffer{}
	opts := operation.Options{
		Config:    cfg,
		StatusMgr: status.NewManager(&bytes.Buffer{}),
		VCS:       vcsRunner,
		UserLog:   status.NewUserLogger(ctx),
		Out:       out,
	}
	return ctx, opts, vcsRunner, out
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// 🧪 TestMirrorOperation checks the end-to-end mirror unit of work.
func TestMirrorOperation(t *testing.T) {
	ctx, opts, _, _ := createTestEnv(t)
	writeFile(t, opts.Config.Source, "a.txt", "hello")
	writeFile(t, opts.Config.Source, "sub/b.txt", "world")
	writeFile(t, opts.Config.Destination, "stale.txt", "old")

	op, err := operation.NewMirrorOperation(opts)
	require.NoError(t, err)
	assert.Equal(t, "mirror", op.Name())

	require.NoError(t, operation.NewRunner(false).Run(ctx, op))

	assert.FileExists(t, filepath.Join(opts.Config.Destination, "a.txt"))
	assert.FileExists(t, filepath.Join(opts.Config.Destination, "sub", "b.txt"))
	assert.NoFileExists(t, filepath.Join(opts.Config.Destination, "stale.txt"))
}

// 🧪 TestMirrorOperationSelfMirror checks that the guard propagates out of
// the operation.
func TestMirrorOperationSelfMirror(t *testing.T) {
	ctx, opts, _, _ := createTestEnv(t)
	opts.Config.Destination = opts.Config.Source

	op, err := operation.NewMirrorOperation(opts)
	require.NoError(t, err)
	require.Error(t, operation.NewRunner(false).Run(ctx, op))
}

// 🧪 TestPublishOperation checks that publish delegates the full git
// sequence against the destination.
func TestPublishOperation(t *testing.T) {
	ctx, opts, vcsRunner, _ := createTestEnv(t)

	op, err := operation.NewPublishOperation(opts)
	require.NoError(t, err)
	assert.Equal(t, "publish", op.Name())

	require.NoError(t, operation.NewRunner(false).Run(ctx, op))

	require.Len(t, vcsRunner.calls, 7)
	assert.Equal(t, []string{"checkout", "--orphan", "newBranch"}, vcsRunner.calls[0])
	assert.Equal(t, []string{"gc", "--aggressive", "--prune=all"}, vcsRunner.calls[6])
	for _, dir := range vcsRunner.dirs {
		assert.Equal(t, opts.Config.Destination, dir)
	}
}

// 🧪 TestPublishOperationFailure checks error propagation from git.
func TestPublishOperationFailure(t *testing.T) {
	ctx, opts, vcsRunner, _ := createTestEnv(t)
	vcsRunner.err = errors.New("remote rejected")

	op, err := operation.NewPublishOperation(opts)
	require.NoError(t, err)

	runErr := operation.NewRunner(false).Run(ctx, op)
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "remote rejected")
	assert.Len(t, vcsRunner.calls, 1, "the sequence stops at the first failure")
}

// 🧪 TestPlanOperation checks the dry run: output without mutation.
func TestPlanOperation(t *testing.T) {
	ctx, opts, _, out := createTestEnv(t)
	writeFile(t, opts.Config.Source, "a.txt", "hello")
	writeFile(t, opts.Config.Destination, "stale.txt", "old")

	op, err := operation.NewPlanOperation(opts)
	require.NoError(t, err)
	assert.Equal(t, "plan", op.Name())

	require.NoError(t, operation.NewRunner(false).Run(ctx, op))

	assert.Contains(t, out.String(), "a.txt")
	assert.Contains(t, out.String(), "stale.txt")
	assert.Contains(t, out.String(), "1 to copy, 1 to delete")

	// Dry run: the stale file survives and nothing was copied
	assert.FileExists(t, filepath.Join(opts.Config.Destination, "stale.txt"))
	assert.NoFileExists(t, filepath.Join(opts.Config.Destination, "a.txt"))
}

// 🧪 TestRunnerOrder checks sequential execution with first-failure abort.
func TestRunnerOrder(t *testing.T) {
	ctx, opts, vcsRunner, _ := createTestEnv(t)
	writeFile(t, opts.Config.Source, "a.txt", "hello")

	mirrorOp, err := operation.NewMirrorOperation(opts)
	require.NoError(t, err)
	publishOp, err := operation.NewPublishOperation(opts)
	require.NoError(t, err)

	require.NoError(t, operation.NewRunner(false).Run(ctx, mirrorOp, publishOp))

	assert.FileExists(t, filepath.Join(opts.Config.Destination, "a.txt"))
	assert.Len(t, vcsRunner.calls, 7, "publish ran after the mirror")
}

// 🧪 TestRunnerAsync checks the detached execution mode.
func TestRunnerAsync(t *testing.T) {
	ctx, opts, _, _ := createTestEnv(t)
	writeFile(t, opts.Config.Source, "a.txt", "hello")

	mirrorOp, err := operation.NewMirrorOperation(opts)
	require.NoError(t, err)

	require.NoError(t, operation.NewRunner(true).Run(ctx, mirrorOp))
	assert.FileExists(t, filepath.Join(opts.Config.Destination, "a.txt"))
}

// 🧪 TestMissingCollaborators checks constructor validation.
func TestMissingCollaborators(t *testing.T) {
	_, err := operation.NewMirrorOperation(operation.Options{})
	require.Error(t, err)

	_, opts, _, _ := createTestEnv(t)
	opts.VCS = nil
	_, err = operation.NewPublishOperation(opts)
	require.Error(t, err)
}
