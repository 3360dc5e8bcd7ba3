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

	"github.com/mirrorpub/mirrorpub/pkg/mirror"
	"gitlab.com/tozd/go/errors"
)

// 🪞 NewMirrorOperation creates the operation that makes the destination an
// exact mirror of the source's non-excluded file set.
func NewMirrorOperation(opts Options) (Operation, error) {
	if err := opts.validate(false); err != nil {
		return nil, err
	}
	return &mirrorOperation{opts: opts}, nil
}

type mirrorOperation struct {
	opts Options
}

func (op *mirrorOperation) Name() string { return "mirror" }

// 🏃 Execute computes the mirror plan and applies it: stale deletions first,
// then unconditional copies.
func (op *mirrorOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	plan, err := mirror.BuildPlan(ctx, cfg.Source, cfg.Destination, cfg.Rules())
	if err != nil {
		return errors.Errorf("planning mirror: %w", err)
	}

	executor := mirror.NewExecutor(op.opts.StatusMgr)
	if err := executor.Execute(ctx, plan); err != nil {
		return errors.Errorf("executing mirror: %w", err)
	}

	if op.opts.UserLog != nil {
		op.opts.UserLog.LogSummary(op.opts.StatusMgr.Counts())
	}
	return nil
}
