package main

import (
	"context"
	"os"

	"github.com/mirrorpub/mirrorpub/cmd/mirrorpub/opts"
	"github.com/mirrorpub/mirrorpub/pkg/config"
	"github.com/mirrorpub/mirrorpub/pkg/status"
	"github.com/mirrorpub/mirrorpub/pkg/vcs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	source     string
	dest       string
	branch     string
	message    string
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Load config file when given, otherwise start from defaults
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Flags override file values
	if source != "" {
		cfg.Source = source
	}
	if dest != "" {
		cfg.Destination = dest
	}
	if branch != "" {
		cfg.DefaultBranch = branch
	}
	if message != "" {
		cfg.CommitMessage = message
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &opts.RootOpts{
		Config:     cfg,
		StatusMgr:  status.NewManager(os.Stdout),
		UserLogger: userLogger,
		VCS:        vcs.NewRunner(),
		Out:        os.Stdout,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (yaml, toml, or hcl)")
	cmd.PersistentFlags().StringVarP(&source, "source", "s", "", "private repository directory (default \".\")")
	cmd.PersistentFlags().StringVar(&dest, "destination", "", "public repository directory (default \"../resume_public\")")
	cmd.PersistentFlags().StringVarP(&branch, "branch", "b", "", "default branch of the public repository (default \"main\")")
	cmd.PersistentFlags().StringVarP(&message, "message", "m", "", "commit message for the squashed commit (default \"autocommit\")")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
