package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/bianoble/treesync/pkg/treesync"
)

var (
	greenVerb  = color.New(color.FgHiGreen).SprintFunc()
	yellowWarn = color.New(color.FgHiYellow).SprintFunc()
)

// printReport writes the deduplicated action list to stdout in
// first-occurrence order, or the no-op message when nothing was done.
func printReport(actions []treesync.Action) {
	if quiet {
		return
	}
	if len(actions) == 0 {
		fmt.Println("no changes needed.")
		return
	}
	for _, a := range actions {
		switch a.Kind {
		case treesync.ActionCreatedDirectory:
			fmt.Printf("%s %s\n", greenVerb("CREATED DIRECTORY:"), a.Path)
		case treesync.ActionCopied:
			fmt.Printf("%s %s -> %s\n", greenVerb("COPIED:"), a.Source, a.Dest)
		default:
			fmt.Println(a)
		}
	}
}

// printSummary writes a one-line totals summary, then any direction-level
// warnings and per-item errors.
func printSummary(result *treesync.Result) {
	if quiet || result == nil {
		return
	}

	copied, skipped := 0, 0
	for _, d := range []*treesync.DirectionResult{result.AtoB, result.BtoA} {
		if d == nil {
			continue
		}
		copied += d.Copied
		skipped += d.Skipped
	}

	fmt.Printf("%d copied, %d skipped, %s transferred\n",
		copied, skipped, humanize.Bytes(uint64(result.TotalBytes())))

	for _, d := range []*treesync.DirectionResult{result.AtoB, result.BtoA} {
		if d == nil {
			continue
		}
		switch d.Outcome {
		case treesync.OutcomeSkipped:
			fmt.Printf("%s direction %s -> %s skipped: %v\n", yellowWarn("warning:"), d.Source, d.Dest, d.Err)
		case treesync.OutcomeAborted:
			errorf("direction %s -> %s aborted: %v", d.Source, d.Dest, d.Err)
		}
		for _, ie := range d.Errors {
			errorf("%v", ie)
		}
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose && !quiet {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
