package commands

import (
	"fmt"

	"github.com/decode-app/supafix/cmd/supafix/opts"
	"github.com/decode-app/supafix/pkg/operation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewScanCmd creates a new scan command
func NewScanCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [pattern...]",
		Short: "Find files still using the legacy import",
		Long: `Scan globs the root directory (default pattern: app/**/*.ts) and lists
every file that still imports the shared Supabase client. Files not covered
by the task list are flagged so the list can be extended.`,
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

			hits, err := runner.Scan(ctx, args)
			if err != nil {
				return errors.Errorf("scanning for legacy imports: %w", err)
			}

			if len(hits) == 0 {
				pterm.Success.Println("No files with the legacy import found")
				return nil
			}
			for _, hit := range hits {
				if hit.Tracked {
					pterm.Info.Println(fmt.Sprintf("📋 %s (in task list)", hit.Path))
				} else {
					pterm.Warning.Println(fmt.Sprintf("🆕 %s (not in task list)", hit.Path))
				}
			}
			return nil
		},
	}
}
