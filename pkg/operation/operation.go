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

// Package operation provides the mirror, plan, and publish operations behind
// the CLI commands.
package operation

import (
	"context"
	"io"
	"os"

	"github.com/mirrorpub/mirrorpub/pkg/config"
	"github.com/mirrorpub/mirrorpub/pkg/status"
	"github.com/mirrorpub/mirrorpub/pkg/vcs"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single unit of work executed by the Runner.
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators shared by all operations.
type Options struct {
	// Config is the release configuration
	Config *config.Config
	// StatusMgr tracks per-file outcomes
	StatusMgr *status.Manager
	// VCS runs git against the destination
	VCS vcs.Runner
	// UserLog reports release stages to the user
	UserLog *status.UserLogger
	// Out receives dry-run plan output; defaults to stdout
	Out io.Writer
}

// ✅ validate checks that the collaborators an operation needs are present.
func (o *Options) validate(needVCS bool) error {
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.StatusMgr == nil {
		return errors.New("status manager is required")
	}
	if needVCS && o.VCS == nil {
		return errors.New("vcs runner is required")
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return nil
}
