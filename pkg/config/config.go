package config

import (
	"github.com/decode-app/supafix/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 📋 Task pairs one repository-relative file path with its auth mode
type Task struct {
	Path string           `yaml:"path"`
	Mode rewrite.AuthMode `yaml:"mode"`
}

// 📚 Config is the full task list for one migration run
type Config struct {
	// Root is the directory task paths are resolved against. Empty means
	// the invoking process's working directory.
	Root  string `yaml:"root,omitempty"`
	Tasks []Task `yaml:"tasks"`
}

// Validate checks that every task has a path and a known auth mode.
func (c *Config) Validate() error {
	if len(c.Tasks) == 0 {
		return errors.Errorf("no tasks defined")
	}
	for i, t := range c.Tasks {
		if t.Path == "" {
			return errors.Errorf("task %d: path is required", i)
		}
		if err := t.Mode.Validate(); err != nil {
			return errors.Errorf("task %d (%s): %w", i, t.Path, err)
		}
	}
	return nil
}

// TrackedPaths returns the set of paths covered by the task list.
func (c *Config) TrackedPaths() map[string]bool {
	paths := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		paths[t.Path] = true
	}
	return paths
}

// Default returns the embedded task list: the API route files of the
// migrated application, classified by the client each one needs.
func Default() *Config {
	return &Config{
		Tasks: []Task{
			// Service role files (system operations, webhooks, cron jobs)
			{Path: "app/api/debug/env-check/route.ts", Mode: rewrite.ModeService},
			{Path: "app/api/health/route.ts", Mode: rewrite.ModeService},
			{Path: "app/api/metrics/route.ts", Mode: rewrite.ModeService},
			{Path: "app/api/webhooks/stripe/route.ts", Mode: rewrite.ModeService},
			{Path: "app/api/webhooks/crossmint/route.ts", Mode: rewrite.ModeService},
			{Path: "app/api/stripe/connect-webhook/route.ts", Mode: rewrite.ModeService},
			{Path: "app/api/cron/weekly-payouts/route.ts", Mode: rewrite.ModeService},

			// User auth files (need authenticated user context)
			{Path: "app/api/payment/create-crossmint-order/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/payment/create-payment-intent/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/payment/create-stripe-session/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/payment/manual-complete/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/payment/update-transaction/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/profile/verify-email/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/stripe/account-balance/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/stripe/account-session/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/stripe/connect-account/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/stripe/create-transfer/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/wallet/transactions/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/payouts/request/route.ts", Mode: rewrite.ModeUser},
			{Path: "app/api/payouts/status/route.ts", Mode: rewrite.ModeUser},
		},
	}
}
