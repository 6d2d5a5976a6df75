package status

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Reporter prints user-facing status lines and mirrors them into zerolog
type Reporter struct {
	formatter Formatter
	log       zerolog.Logger
}

// NewReporter creates a new reporter using the logger from ctx.
func NewReporter(ctx context.Context) *Reporter {
	return &Reporter{
		formatter: NewDefaultFormatter(),
		log:       *zerolog.Ctx(ctx),
	}
}

// printer picks the pterm severity matching an outcome.
func printer(outcome Outcome) *pterm.PrefixPrinter {
	switch outcome {
	case OutcomeRewritten:
		return &pterm.Success
	case OutcomeAlreadySatisfied:
		return &pterm.Info
	case OutcomeUnchanged, OutcomeNotFound:
		return &pterm.Warning
	case OutcomeError:
		return &pterm.Error
	default:
		return &pterm.Debug
	}
}

// FileOutcome reports the result of one file task.
func (r *Reporter) FileOutcome(path string, mode string, outcome Outcome, err error) {
	msg := r.formatter.FormatFileOutcome(path, mode, outcome, err)
	printer(outcome).Println(msg)

	evt := r.log.Info()
	if err != nil {
		evt = r.log.Error().Err(err)
	}
	evt.Str("path", path).
		Str("mode", mode).
		Str("outcome", outcome.String()).
		Msg(msg)
}

// Banner prints a lead-in line before a run starts.
func (r *Reporter) Banner(msg string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔧"}).Println(msg)
	r.log.Info().Msg(msg)
}

// Summary prints the final tally.
func (r *Reporter) Summary(sum Summary) {
	for _, line := range r.formatter.FormatSummary(sum) {
		pterm.Println(line)
	}
	r.log.Info().
		Int("fixed", sum.Fixed).
		Int("failed", sum.Failed).
		Msg("run complete")
}
