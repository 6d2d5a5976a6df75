package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/decode-app/supafix/cmd/supafix/commands"
	"github.com/decode-app/supafix/cmd/supafix/opts"
	"github.com/decode-app/supafix/pkg/config"
	"github.com/decode-app/supafix/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	rootDir    string
	debug      bool
)

// newRootOpts resolves config, root directory, and reporter after flags
// have been parsed.
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Embedded task list unless a config file is given
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Flag beats config; default is the working directory
	root := rootDir
	if root == "" {
		root = cfg.Root
	}
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving root path: %w", err)
	}

	return &opts.RootOpts{
		Config:   cfg,
		Root:     absRoot,
		Reporter: status.NewReporter(ctx),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "optional task-list file (.yaml or .hcl); defaults to the embedded list")
	cmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "directory task paths are resolved against (default: working directory)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() zerolog.Logger {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
	return log
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "supafix",
		Short: "Migrate API routes off the shared Supabase client",
		Long: `supafix rewrites API route files that import the shared Supabase client.
Each listed file gets the import for its auth mode instead — a request-scoped
client for user routes, a service-role client for system routes — plus a
client-construction statement injected near the first usage.

Running with no subcommand performs the migration in place.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging()
			ctx := logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			resolved, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*o = *resolved
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunFix(cmd.Context(), o)
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewFixCmd(o))
	cmd.AddCommand(commands.NewStatusCmd(o))
	cmd.AddCommand(commands.NewScanCmd(o))
	return cmd
}
