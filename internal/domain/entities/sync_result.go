package entities

import (
	"fmt"
	"sort"
	"strings"
)

// Outcome is what happened to one repository during an operation.
type Outcome string

const (
	OutcomeFailed Outcome = "failed"

	// clone
	OutcomeCloned     Outcome = "cloned"
	OutcomeWouldClone Outcome = "would-clone"
	OutcomePresent    Outcome = "present"

	// pull
	OutcomeUpToDate         Outcome = "up-to-date"
	OutcomeFastForwarded    Outcome = "fast-forwarded"
	OutcomeWouldFastForward Outcome = "would-fast-forward"
	OutcomeDiverged         Outcome = "diverged"
	OutcomeSkippedDirty     Outcome = "skipped-dirty"
	OutcomeSkippedNoBranch  Outcome = "skipped-no-branch"
	OutcomeRetriesExhausted Outcome = "retries-exhausted"

	// status
	OutcomeClean Outcome = "clean"
	OutcomeDirty Outcome = "dirty"

	// featured
	OutcomeOnBranch Outcome = "on-branch"
	OutcomeOnTrunk  Outcome = "on-trunk"
	OutcomeUnborn   Outcome = "unborn"
	OutcomeDetached Outcome = "detached"
)

// SyncResult is the captured result of one unit of work.
type SyncResult struct {
	Target  string
	Outcome Outcome
	Err     error
}

// SyncReport aggregates the results of one operation.
type SyncReport struct {
	Operation string
	Results   []SyncResult
}

// Count returns how many results have the given outcome.
func (r SyncReport) Count(outcome Outcome) int {
	n := 0
	for _, result := range r.Results {
		if result.Outcome == outcome {
			n++
		}
	}
	return n
}

// Failed returns the number of results that carry an error.
func (r SyncReport) Failed() int {
	n := 0
	for _, result := range r.Results {
		if result.Err != nil {
			n++
		}
	}
	return n
}

// Summary counts results per outcome.
func (r SyncReport) Summary() map[Outcome]int {
	summary := make(map[Outcome]int)
	for _, result := range r.Results {
		summary[result.Outcome]++
	}
	return summary
}

// Find returns the result for the given target.
func (r SyncReport) Find(target string) (SyncResult, bool) {
	for _, result := range r.Results {
		if result.Target == target {
			return result, true
		}
	}
	return SyncResult{}, false
}

// String renders the summary as "outcome=n" pairs in lexical order.
func (r SyncReport) String() string {
	summary := r.Summary()
	parts := make([]string, 0, len(summary))
	for outcome, n := range summary {
		parts = append(parts, fmt.Sprintf("%s=%d", outcome, n))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
