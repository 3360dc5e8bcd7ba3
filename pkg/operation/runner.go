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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes operations. The default mode is synchronous; async mode
// detaches execution onto a goroutine with context cancellation but offers no
// parallelism between operations, which always run in order.
type Runner struct {
	async bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool) *Runner {
	return &Runner{async: async}
}

// 🏃 Run executes the given operations in order, stopping at the first
// failure.
func (r *Runner) Run(ctx context.Context, ops ...Operation) error {
	for _, op := range ops {
		zerolog.Ctx(ctx).Debug().Str("operation", op.Name()).Msg("running operation")
		if err := r.runOne(ctx, op); err != nil {
			return errors.Errorf("running %s: %w", op.Name(), err)
		}
	}
	return nil
}

func (r *Runner) runOne(ctx context.Context, op Operation) error {
	if r.async {
		return r.runAsync(ctx, op)
	}
	return op.Execute(ctx)
}

// ⚡ runAsync runs an operation on its own goroutine, honoring cancellation.
func (r *Runner) runAsync(ctx context.Context, op Operation) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return op.Execute(ctx)
	})
	return group.Wait()
}
