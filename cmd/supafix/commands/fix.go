package commands

import (
	"context"

	"github.com/decode-app/supafix/cmd/supafix/opts"
	"github.com/decode-app/supafix/pkg/operation"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Rewrite the listed files in place",
		Long: `Fix processes every file in the task list:
1. Swap the legacy shared-client import for the mode-specific one
2. Inject a client-construction statement near the first usage
3. Write the file back in place if anything changed
4. Print a per-file status line and a final fixed/failed tally

Files already migrated are reported as fixed and left untouched. Individual
failures never abort the run and never change the exit code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunFix(cmd.Context(), o)
		},
	}
}

// RunFix executes the migration. Per-file failures are tallied, not
// returned: the run always completes and exits zero.
func RunFix(ctx context.Context, o *opts.RootOpts) error {
	runner, err := operation.New(operation.Options{
		Config:   o.Config,
		Root:     o.Root,
		Reporter: o.Reporter,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	o.Reporter.Banner("Fixing Supabase imports in API routes...")
	sum, err := runner.Run(ctx)
	if err != nil {
		return errors.Errorf("running migration: %w", err)
	}
	o.Reporter.Summary(sum)
	return nil
}
