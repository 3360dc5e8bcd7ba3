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

	"github.com/mirrorpub/mirrorpub/pkg/vcs"
	"gitlab.com/tozd/go/errors"
)

// 🌿 NewPublishOperation creates the operation that hands the destination to
// git for a history-squashing publish.
func NewPublishOperation(opts Options) (Operation, error) {
	if err := opts.validate(true); err != nil {
		return nil, err
	}
	return &publishOperation{opts: opts}, nil
}

type publishOperation struct {
	opts Options
}

func (op *publishOperation) Name() string { return "publish" }

// 🏃 Execute runs the squash-publish sequence against the destination.
func (op *publishOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	if op.opts.UserLog != nil {
		op.opts.UserLog.LogPublishStep("publishing " + cfg.Destination + " with squashed history")
	}

	err := vcs.PublishSquashed(ctx, op.opts.VCS, cfg.Destination, cfg.DefaultBranch, cfg.CommitMessage)
	if err != nil {
		return errors.Errorf("publishing: %w", err)
	}
	return nil
}
