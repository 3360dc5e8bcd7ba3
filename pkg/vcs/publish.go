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

package vcs

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// orphanBranch is the scratch branch the squashed commit is built on before
// it takes over the default branch name.
const orphanBranch = "newBranch"

// 🌿 PublishSquashed publishes dir to the origin remote with a history of
// exactly one commit, so no earlier state of the tree stays reachable.
//
// The step order is load-bearing: each git command depends on the repository
// state left by the previous one (the rename only works because the orphan
// branch was just created, the push only makes sense after the rename). Any
// step failing aborts the sequence; partial completion is surfaced, not
// recovered.
func PublishSquashed(ctx context.Context, runner Runner, dir, defaultBranch, message string) error {
	logger := zerolog.Ctx(ctx)

	steps := [][]string{
		{"checkout", "--orphan", orphanBranch},
		{"add", "-A"},
		{"commit", "-m", message, "--allow-empty"},
		{"branch", "-D", defaultBranch},
		{"branch", "-m", defaultBranch},
		{"push", "-f", "origin", defaultBranch},
		{"gc", "--aggressive", "--prune=all"},
	}

	for _, args := range steps {
		logger.Info().Strs("args", args).Msg("publish step")
		if _, err := runner.Run(ctx, dir, args...); err != nil {
			return errors.Errorf("publishing squashed history: %w", err)
		}
	}

	return nil
}
