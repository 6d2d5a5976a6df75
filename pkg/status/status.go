package status

// 📊 Outcome represents the result of processing one file task
type Outcome int

const (
	OutcomeUnknown          Outcome = iota
	OutcomeRewritten                // legacy import swapped, file written back
	OutcomeAlreadySatisfied         // legacy import absent, nothing to do
	OutcomeUnchanged                // legacy import present but no substitution landed
	OutcomeNotFound                 // file does not exist on disk
	OutcomeError                    // read or write failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeRewritten:
		return "fixed"
	case OutcomeAlreadySatisfied:
		return "already fixed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeNotFound:
		return "not found"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome counts toward the failure tally.
// Already-satisfied files count as successes: the import they were listed
// for is gone, which is all the run promises.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeUnchanged, OutcomeNotFound, OutcomeError:
		return true
	default:
		return false
	}
}

// 🧮 Summary is the aggregate tally of one migration run
type Summary struct {
	Fixed  int // rewritten or already satisfied
	Failed int // missing, unchanged, or errored
}

// Add folds one file's outcome into the tally.
func (s *Summary) Add(o Outcome) {
	if o.Failed() {
		s.Failed++
	} else {
		s.Fixed++
	}
}

// Total returns the number of files processed.
func (s Summary) Total() int {
	return s.Fixed + s.Failed
}
