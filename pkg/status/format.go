package status

import (
	"fmt"

	"github.com/fatih/color"
)

// Formatter defines how file outcomes and the run summary are rendered
type Formatter interface {
	// FormatFileOutcome formats a single file's status line
	FormatFileOutcome(path string, mode string, outcome Outcome, err error) string

	// FormatSummary formats the final tally
	FormatSummary(sum Summary) []string
}

// DefaultFormatter provides the default console rendering
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatFileOutcome formats a file status line with emoji glyphs
func (f *DefaultFormatter) FormatFileOutcome(path string, mode string, outcome Outcome, err error) string {
	switch outcome {
	case OutcomeRewritten:
		return fmt.Sprintf("✅ Fixed: %s (auth mode: %s)", color.GreenString(path), mode)
	case OutcomeAlreadySatisfied:
		return fmt.Sprintf("✅ Already fixed or doesn't need fixing: %s", color.CyanString(path))
	case OutcomeUnchanged:
		return fmt.Sprintf("⚠️  Could not automatically fix: %s", color.YellowString(path))
	case OutcomeNotFound:
		return fmt.Sprintf("⚠️  File not found: %s", color.YellowString(path))
	case OutcomeError:
		return fmt.Sprintf("❌ Failed %s: %v", color.RedString(path), err)
	default:
		return fmt.Sprintf("❓ %s", path)
	}
}

// FormatSummary formats the final fixed/failed tally
func (f *DefaultFormatter) FormatSummary(sum Summary) []string {
	lines := []string{
		fmt.Sprintf("✅ Successfully fixed: %d files", sum.Fixed),
	}
	if sum.Failed > 0 {
		lines = append(lines, fmt.Sprintf("⚠️  Failed or need manual review: %d files", sum.Failed))
	}
	return lines
}
