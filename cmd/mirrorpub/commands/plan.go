package commands

import (
	"github.com/mirrorpub/mirrorpub/pkg/operation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(optsFn OptsFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what a mirror run would copy and delete",
		Long: `Plan is a dry run: it lists the files a mirror run would copy into the
destination and the stale files it would delete, without touching the
filesystem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "plan").Logger().WithContext(ctx)

			o, err := optsFn(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}

			planOp, err := operation.NewPlanOperation(operationOptions(o))
			if err != nil {
				return errors.Errorf("creating plan operation: %w", err)
			}

			runner := operation.NewRunner(false)
			return runner.Run(ctx, planOp)
		},
	}

	return cmd
}
