package engine

import "errors"

// Sentinel errors classifying direction-level failures.
var (
	// ErrSourceUnavailable means the source root is missing or unreachable.
	// The direction is skipped; this is a warning, not a failure.
	ErrSourceUnavailable = errors.New("source root unavailable")

	// ErrDestinationCreate means the destination root or an item's parent
	// directory could not be created. The direction aborts.
	ErrDestinationCreate = errors.New("destination creation failed")

	// ErrEnumeration means the source tree could not be listed. The
	// direction aborts.
	ErrEnumeration = errors.New("source enumeration failed")
)

// Outcome is the terminal state of one direction pass.
type Outcome string

const (
	// OutcomeCompleted means the item loop ran to the end. Individual item
	// failures may still be present in Errors.
	OutcomeCompleted Outcome = "completed"

	// OutcomeSkipped means the source root was unavailable and the
	// direction performed no work.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeAborted means destination creation or enumeration failed
	// partway; some items may have been copied before the abort.
	OutcomeAborted Outcome = "aborted"
)

// ItemError records a recoverable per-item copy failure. The item loop
// continues past these.
type ItemError struct {
	Path string
	Op   string // "copy"
	Err  error
}

func (e ItemError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// DirectionResult holds the outcome of one one-way reconciliation pass.
type DirectionResult struct {
	Source  string
	Dest    string
	Outcome Outcome

	// Copied counts items copied (a directory copied recursively counts as
	// one item). Skipped counts items already present at the destination.
	Copied  int
	Skipped int

	// FilesCopied and BytesCopied total the individual files written,
	// including those inside recursively copied directories.
	FilesCopied int
	BytesCopied int64

	// Errors holds recoverable per-item failures.
	Errors []ItemError

	// Err is the direction-level failure when Outcome is Aborted, or the
	// unavailability cause when Outcome is Skipped.
	Err error
}

// Failed reports whether the direction aborted or any item failed.
func (r *DirectionResult) Failed() bool {
	return r.Outcome == OutcomeAborted || len(r.Errors) > 0
}

// Result holds both direction passes of a bidirectional run.
type Result struct {
	AtoB *DirectionResult
	BtoA *DirectionResult
}

// Failed reports whether either direction aborted or had item failures.
func (r *Result) Failed() bool {
	return (r.AtoB != nil && r.AtoB.Failed()) || (r.BtoA != nil && r.BtoA.Failed())
}

// TotalErrors counts item-level failures across both directions.
func (r *Result) TotalErrors() int {
	n := 0
	if r.AtoB != nil {
		n += len(r.AtoB.Errors)
	}
	if r.BtoA != nil {
		n += len(r.BtoA.Errors)
	}
	return n
}

// TotalBytes sums the bytes written across both directions.
func (r *Result) TotalBytes() int64 {
	var n int64
	if r.AtoB != nil {
		n += r.AtoB.BytesCopied
	}
	if r.BtoA != nil {
		n += r.BtoA.BytesCopied
	}
	return n
}
