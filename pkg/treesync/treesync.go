// Package treesync provides the public Go library API for treesync.
//
// treesync performs bidirectional, additive-only reconciliation of two
// directory trees: anything present on one side and absent on the other is
// copied across, so both trees converge to the union of their contents.
// Items present on both sides are never compared or touched, and nothing is
// ever deleted.
//
// # Basic Usage
//
//	result, actions, err := treesync.Reconcile(ctx, "/data/left", "/data/right", treesync.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range actions {
//	    fmt.Println(a)
//	}
package treesync

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bianoble/treesync/internal/actionlog"
	"github.com/bianoble/treesync/internal/engine"
)

// Options configures a reconciliation run.
type Options struct {
	// Excludes holds doublestar globs matched against each item's path
	// relative to its root. Matching items are not copied; matching
	// directories are not descended into.
	Excludes []string

	// DryRun reports the actions a run would perform without mutating
	// either tree.
	DryRun bool

	// Logger receives warnings and per-item errors. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Reconcile runs one bidirectional pass over the two roots and returns the
// per-direction results plus the deduplicated action list in
// first-occurrence order. Both roots must be absolute paths; existence is
// checked during the run, not up front.
func Reconcile(ctx context.Context, rootA, rootB string, opts Options) (*Result, []Action, error) {
	if rootA == "" || rootB == "" {
		return nil, nil, fmt.Errorf("both roots must be non-empty")
	}
	if !filepath.IsAbs(rootA) {
		return nil, nil, fmt.Errorf("root %s is not an absolute path", rootA)
	}
	if !filepath.IsAbs(rootB) {
		return nil, nil, fmt.Errorf("root %s is not an absolute path", rootB)
	}

	s := &engine.Synchronizer{
		Excludes: opts.Excludes,
		DryRun:   opts.DryRun,
		Logger:   opts.Logger,
	}

	log := actionlog.New()
	result, err := s.Reconcile(ctx, rootA, rootB, log)
	if err != nil {
		return result, log.Entries(), err
	}
	return result, log.Entries(), nil
}
