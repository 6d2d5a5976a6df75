package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/decode-app/supafix/pkg/rewrite"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultScanPatterns covers the API route tree of a Next.js-style app.
var DefaultScanPatterns = []string{"app/**/*.ts"}

// 🔍 ScanHit is one file still carrying the legacy import
type ScanHit struct {
	Path    string // path relative to the run root
	Tracked bool   // whether the task list already covers this file
}

// Scan walks the root with the given glob patterns and returns every file
// that still contains the legacy import. Hits not covered by the task list
// are the interesting ones: they were missed when the list was drawn up.
func (r *Runner) Scan(ctx context.Context, patterns []string) ([]ScanHit, error) {
	logger := zerolog.Ctx(ctx)
	if len(patterns) == 0 {
		patterns = DefaultScanPatterns
	}

	tracked := r.cfg.TrackedPaths()
	fsys := os.DirFS(r.root)

	var hits []ScanHit
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, errors.Errorf("globbing %q: %w", pattern, err)
		}
		logger.Debug().
			Str("pattern", pattern).
			Int("matches", len(matches)).
			Msg("scanned pattern")

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			content, err := os.ReadFile(r.absPath(match))
			if err != nil {
				logger.Warn().Err(err).Str("path", match).Msg("skipping unreadable file")
				continue
			}
			if !strings.Contains(string(content), rewrite.LegacyImport) {
				continue
			}
			hits = append(hits, ScanHit{
				Path:    match,
				Tracked: tracked[match],
			})
		}
	}
	return hits, nil
}

// absPath resolves a slash-separated glob match against the run root.
func (r *Runner) absPath(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}
