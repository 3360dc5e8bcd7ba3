package commands

import (
	"context"

	"github.com/mirrorpub/mirrorpub/cmd/mirrorpub/opts"
	"github.com/mirrorpub/mirrorpub/pkg/operation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// OptsFunc builds the shared command options after flags are parsed.
type OptsFunc func(ctx context.Context) (*opts.RootOpts, error)

// NewReleaseCmd creates a new release command
func NewReleaseCmd(optsFn OptsFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Mirror the source and publish it with a single-commit history",
		Long: `Release performs the full publish flow. It will:
1. Compute the mirror plan (copies and stale deletions)
2. Make the destination an exact mirror of the source
3. Commit everything on a fresh orphan branch
4. Force-push the branch as the default branch and purge old history`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "release").Logger().WithContext(ctx)

			o, err := optsFn(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}

			mirrorOp, err := operation.NewMirrorOperation(operationOptions(o))
			if err != nil {
				return errors.Errorf("creating mirror operation: %w", err)
			}
			publishOp, err := operation.NewPublishOperation(operationOptions(o))
			if err != nil {
				return errors.Errorf("creating publish operation: %w", err)
			}

			o.UserLogger.LogStage("mirroring " + o.Config.Source + " into " + o.Config.Destination)
			runner := operation.NewRunner(o.Config.Async)
			if err := runner.Run(ctx, mirrorOp, publishOp); err != nil {
				o.UserLogger.LogError(err)
				return err
			}

			o.UserLogger.LogStage("release complete")
			return nil
		},
	}

	return cmd
}

// operationOptions converts the shared command options into operation options.
func operationOptions(o *opts.RootOpts) operation.Options {
	return operation.Options{
		Config:    o.Config,
		StatusMgr: o.StatusMgr,
		VCS:       o.VCS,
		UserLog:   o.UserLogger,
		Out:       o.Out,
	}
}
