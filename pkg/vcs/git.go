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

// Package vcs wraps the external git executable used to publish the mirrored
// tree.
package vcs

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ⛔ ErrGit is the base error for any git invocation exiting non-zero.
var ErrGit = errors.Base("git command failed")

// 🔌 Runner executes a single git subcommand with dir as the working
// directory and returns its combined output. Implementations do not retry.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// 🏭 NewRunner returns a Runner backed by the git executable on PATH.
func NewRunner() Runner {
	return &gitRunner{gitPath: "git"}
}

type gitRunner struct {
	gitPath string
}

func (g *gitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Strs("args", args).
		Msg("running git")

	cmd := exec.CommandContext(ctx, g.gitPath, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, errors.Errorf("%w: git %s: %s", ErrGit, strings.Join(args, " "), output)
	}
	return output, nil
}
