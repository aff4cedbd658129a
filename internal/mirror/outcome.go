package mirror

// Outcome describes the structured result of an acquire or refresh attempt,
// distinct from any printed message, so callers and tests assert on state
// transitions rather than parsing output.
type Outcome int

const (
	SkippedExists  Outcome = iota // mirror already present, nothing touched
	Acquired                      // fresh transfer into an absent path
	Reacquired                    // existing mirror removed, fresh transfer done
	Updated                       // git mirror refreshed in place
	NotPresent                    // refresh target missing, nothing to do
	FailedRemoval                 // could not remove the existing mirror
	FailedTransfer                // the external transfer reported failure
)

// String returns a short machine-friendly label for the outcome.
func (o Outcome) String() string {
	switch o {
	case SkippedExists:
		return "skipped-already-present"
	case Acquired:
		return "acquired"
	case Reacquired:
		return "removed-and-reacquired"
	case Updated:
		return "updated"
	case NotPresent:
		return "not-present"
	case FailedRemoval:
		return "failed-removal"
	case FailedTransfer:
		return "failed-transfer"
	}
	return "unknown"
}

// Failed reports whether the outcome represents a failure.
func (o Outcome) Failed() bool {
	return o == FailedRemoval || o == FailedTransfer
}

// Result holds the outcome of one acquire/refresh attempt against a source.
type Result struct {
	Outcome Outcome
	Path    string // resolved local mirror directory
	Err     error  // underlying error for failed outcomes, nil otherwise
}
