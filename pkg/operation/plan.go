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
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mirrorpub/mirrorpub/pkg/mirror"
	"gitlab.com/tozd/go/errors"
)

// 📋 NewPlanOperation creates the dry-run operation: it computes the mirror
// plan and prints it without touching the filesystem.
func NewPlanOperation(opts Options) (Operation, error) {
	if err := opts.validate(false); err != nil {
		return nil, err
	}
	return &planOperation{opts: opts}, nil
}

type planOperation struct {
	opts Options
}

func (op *planOperation) Name() string { return "plan" }

// 🏃 Execute prints the copies and deletions a mirror run would perform.
func (op *planOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	plan, err := mirror.BuildPlan(ctx, cfg.Source, cfg.Destination, cfg.Rules())
	if err != nil {
		return errors.Errorf("planning mirror: %w", err)
	}

	removed := color.New(color.FgRed).Sprint("-")
	copied := color.New(color.FgGreen).Sprint("+")

	for _, path := range plan.Deletions {
		fmt.Fprintf(op.opts.Out, "%s delete %s\n", removed, display(plan.DestRoot, path))
	}
	for _, path := range plan.Copies {
		fmt.Fprintf(op.opts.Out, "%s copy   %s\n", copied, display(plan.SourceRoot, path))
	}
	fmt.Fprintf(op.opts.Out, "%d to copy, %d to delete\n", len(plan.Copies), len(plan.Deletions))

	return nil
}

func display(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
