package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormatter_FormatFileOutcome(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		mode    string
		outcome Outcome
		err     error
		want    []string
	}{
		{
			name:    "rewritten",
			path:    "app/api/health/route.ts",
			mode:    "service",
			outcome: OutcomeRewritten,
			want:    []string{"✅ Fixed:", "app/api/health/route.ts", "auth mode: service"},
		},
		{
			name:    "already_satisfied",
			path:    "app/api/wallet/transactions/route.ts",
			mode:    "user",
			outcome: OutcomeAlreadySatisfied,
			want:    []string{"✅ Already fixed", "app/api/wallet/transactions/route.ts"},
		},
		{
			name:    "unchanged",
			path:    "app/api/metrics/route.ts",
			mode:    "service",
			outcome: OutcomeUnchanged,
			want:    []string{"⚠️", "Could not automatically fix", "app/api/metrics/route.ts"},
		},
		{
			name:    "not_found",
			path:    "app/api/missing/route.ts",
			mode:    "user",
			outcome: OutcomeNotFound,
			want:    []string{"⚠️", "File not found", "app/api/missing/route.ts"},
		},
		{
			name:    "error",
			path:    "app/api/health/route.ts",
			mode:    "service",
			outcome: OutcomeError,
			err:     errors.New("permission denied"),
			want:    []string{"❌", "permission denied"},
		},
	}

	formatter := NewDefaultFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.FormatFileOutcome(tt.path, tt.mode, tt.outcome, tt.err)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestDefaultFormatter_FormatSummary(t *testing.T) {
	formatter := NewDefaultFormatter()

	t.Run("all_fixed", func(t *testing.T) {
		lines := formatter.FormatSummary(Summary{Fixed: 20})
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "Successfully fixed: 20 files")
	})

	t.Run("with_failures", func(t *testing.T) {
		lines := formatter.FormatSummary(Summary{Fixed: 18, Failed: 2})
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Successfully fixed: 18 files")
		assert.Contains(t, lines[1], "Failed or need manual review: 2 files")
	})
}
