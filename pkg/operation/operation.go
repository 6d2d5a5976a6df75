// Package operation runs the client migration over a task list
package operation

import (
	"github.com/decode-app/supafix/pkg/config"
	"github.com/decode-app/supafix/pkg/rewrite"
	"github.com/decode-app/supafix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the runner
type Options struct {
	// Config is the task list to process
	Config *config.Config
	// Root is the directory task paths are resolved against
	Root string
	// Reporter prints per-file and summary status
	Reporter *status.Reporter
	// DryRun computes outcomes without writing anything back
	DryRun bool
}

// 🏃 Runner executes the migration sequentially over the task list
type Runner struct {
	cfg      *config.Config
	root     string
	reporter *status.Reporter
	rewriter *rewrite.ClientRewriter
	dryRun   bool
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	return &Runner{
		cfg:      opts.Config,
		root:     opts.Root,
		reporter: opts.Reporter,
		rewriter: rewrite.NewClientRewriter(),
		dryRun:   opts.DryRun,
	}, nil
}
