package commands

import (
	"github.com/mirrorpub/mirrorpub/pkg/operation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewMirrorCmd creates a new mirror command
func NewMirrorCmd(optsFn OptsFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Mirror the source into the destination without publishing",
		Long: `Mirror makes the destination's non-excluded file set identical to the
source's: stale files are deleted, then every source file is copied in,
overwriting unconditionally. No version-control steps run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "mirror").Logger().WithContext(ctx)

			o, err := optsFn(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}

			mirrorOp, err := operation.NewMirrorOperation(operationOptions(o))
			if err != nil {
				return errors.Errorf("creating mirror operation: %w", err)
			}

			runner := operation.NewRunner(o.Config.Async)
			if err := runner.Run(ctx, mirrorOp); err != nil {
				o.UserLogger.LogError(err)
				return err
			}
			return nil
		},
	}

	return cmd
}
