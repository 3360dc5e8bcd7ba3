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

package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about the stages of a release
// run, on top of the structured zerolog output.
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 🚩 LogStage logs the start of a release stage.
func (u *UserLogger) LogStage(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🌿 LogPublishStep logs one version-control step of the publish sequence.
func (u *UserLogger) LogPublishStep(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "🌿"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 📊 LogSummary logs the final per-status counts of a mirror run.
func (u *UserLogger) LogSummary(counts map[FileStatus]int) {
	msg := fmt.Sprintf("%d new, %d updated, %d unchanged, %d removed",
		counts[StatusNew], counts[StatusModified], counts[StatusUnchanged], counts[StatusDeleted])
	printer := pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	printer.Println(msg)
	u.log.Info().Msg(msg)
}

// ❌ LogError logs a failure in user-friendly form.
func (u *UserLogger) LogError(err error) {
	pterm.Error.Println(err)
	u.log.Error().Err(err).Msg("run failed")
}
