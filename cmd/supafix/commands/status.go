package commands

import (
	"github.com/decode-app/supafix/cmd/supafix/opts"
	"github.com/decode-app/supafix/pkg/operation"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report what fix would change, without writing",
		Long: `Status runs the same pipeline as fix but never writes anything back.
Each file is read, rewritten in memory, and reported with the outcome a real
run would produce.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := operation.New(operation.Options{
				Config:   o.Config,
				Root:     o.Root,
				Reporter: o.Reporter,
				DryRun:   true,
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			o.Reporter.Banner("Checking Supabase imports (dry run)...")
			sum, err := runner.Run(ctx)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}
			o.Reporter.Summary(sum)
			return nil
		},
	}
}
