package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/decode-app/supafix/pkg/config"
	"github.com/decode-app/supafix/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Run processes every task in order and returns the aggregate tally.
// No single file's failure escapes its task: missing files, unmatched
// patterns, and write errors are reported, counted, and skipped past so
// the run always reaches the end of the list.
func (r *Runner) Run(ctx context.Context) (status.Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Int("tasks", len(r.cfg.Tasks)).
		Str("root", r.root).
		Bool("dry_run", r.dryRun).
		Msg("starting migration run")

	var sum status.Summary
	for _, task := range r.cfg.Tasks {
		outcome, err := r.processTask(ctx, task)
		r.reporter.FileOutcome(task.Path, string(task.Mode), outcome, err)
		sum.Add(outcome)
	}
	return sum, nil
}

// processTask applies the per-file algorithm for one task.
func (r *Runner) processTask(ctx context.Context, task config.Task) (status.Outcome, error) {
	absPath := filepath.Join(r.root, task.Path)

	fi, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return status.OutcomeNotFound, nil
	}
	if err != nil {
		return status.OutcomeError, errors.Errorf("checking file: %w", err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return status.OutcomeError, errors.Errorf("reading file: %w", err)
	}

	result, err := r.rewriter.Rewrite(ctx, bytes.NewReader(content), task.Mode)
	if err != nil {
		return status.OutcomeError, errors.Errorf("rewriting content: %w", err)
	}

	if !result.ImportReplaced {
		return status.OutcomeAlreadySatisfied, nil
	}
	if !result.WasModified {
		return status.OutcomeUnchanged, nil
	}

	if !r.dryRun {
		if err := writeFileAtomic(absPath, result.ModifiedContent, fi.Mode()); err != nil {
			return status.OutcomeError, errors.Errorf("writing file: %w", err)
		}
	}
	return status.OutcomeRewritten, nil
}

// writeFileAtomic writes content to a temp file and renames it into place,
// preserving the original file mode.
func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
