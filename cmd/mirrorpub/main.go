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

package main

import (
	"context"
	"os"

	"github.com/mirrorpub/mirrorpub/cmd/mirrorpub/commands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "mirrorpub",
		Short: "Mirror a private repository into a public one with squashed history",
		Long: `mirrorpub mirrors the files of a private repository into a public
repository directory (minus excluded paths) and publishes the result as a
single squashed commit, so earlier states of the source never appear in the
public history.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands; options are built per-run, after flag parsing
	rootCmd.AddCommand(
		commands.NewReleaseCmd(newRootOpts),
		commands.NewMirrorCmd(newRootOpts),
		commands.NewPlanCmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
