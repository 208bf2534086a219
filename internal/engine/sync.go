package engine

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bianoble/treesync/internal/actionlog"
	"github.com/bianoble/treesync/internal/fsops"
	"github.com/bianoble/treesync/internal/pathmap"
)

// Synchronizer performs additive reconciliation between directory trees.
// Items present in the source and absent at the mapped destination path are
// copied; items present on both sides are skipped without any content
// comparison. Nothing is ever deleted or overwritten.
type Synchronizer struct {
	// Excludes holds doublestar globs matched against each item's
	// slash-normalized path relative to its root. Excluded directories are
	// pruned from traversal.
	Excludes []string

	// DryRun records the actions a run would perform without touching the
	// filesystem.
	DryRun bool

	// Logger receives warnings and per-item errors. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

func (s *Synchronizer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// excluded reports whether the slash-form relative path matches any
// exclude glob. Patterns were validated at configuration time; an invalid
// pattern here matches nothing.
func (s *Synchronizer) excluded(rel string) bool {
	for _, g := range s.Excludes {
		if ok, err := doublestar.Match(g, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Reconcile runs one bidirectional pass: rootA into rootB, then rootB into
// rootA, sequentially, appending every performed action to log. A failure in
// one direction never prevents the other from running; direction-level
// failures are recorded on the respective DirectionResult.
func (s *Synchronizer) Reconcile(ctx context.Context, rootA, rootB string, log *actionlog.Log) (*Result, error) {
	res := &Result{}
	res.AtoB = s.SyncDirection(ctx, rootA, rootB, log)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.BtoA = s.SyncDirection(ctx, rootB, rootA, log)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// SyncDirection reconciles one direction: every item under sourceRoot that
// has no counterpart at its mapped path under destRoot is copied across.
// Actions performed are appended to log; entries are only appended after the
// corresponding filesystem mutation succeeded.
func (s *Synchronizer) SyncDirection(ctx context.Context, sourceRoot, destRoot string, log *actionlog.Log) *DirectionResult {
	sourceRoot = filepath.Clean(sourceRoot)
	destRoot = filepath.Clean(destRoot)
	res := &DirectionResult{Source: sourceRoot, Dest: destRoot, Outcome: OutcomeCompleted}

	if !fsops.DirExists(sourceRoot) {
		res.Outcome = OutcomeSkipped
		res.Err = fmt.Errorf("%w: %s", ErrSourceUnavailable, sourceRoot)
		s.logger().Warn("source root unavailable, skipping direction",
			"source", sourceRoot, "dest", destRoot)
		return res
	}

	if !fsops.DirExists(destRoot) {
		if s.DryRun {
			log.Append(actionlog.CreatedDirectory(destRoot))
		} else if err := fsops.EnsureDir(destRoot); err != nil {
			res.Outcome = OutcomeAborted
			res.Err = fmt.Errorf("%w: %v", ErrDestinationCreate, err)
			s.logger().Error("cannot create destination root, aborting direction",
				"dest", destRoot, "error", err)
			return res
		} else {
			log.Append(actionlog.CreatedDirectory(destRoot))
		}
	}

	err := filepath.WalkDir(sourceRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("%w: %v", ErrEnumeration, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrEnumeration, err)
		}
		if path == sourceRoot {
			return nil
		}

		rel, err := filepath.Rel(sourceRoot, path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEnumeration, err)
		}
		if s.excluded(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		dest, err := pathmap.Map(sourceRoot, destRoot, path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEnumeration, err)
		}

		if fsops.Exists(dest) {
			res.Skipped++
			return nil
		}

		return s.copyItem(ctx, path, dest, d, log, res)
	})
	if err != nil {
		res.Outcome = OutcomeAborted
		res.Err = err
		s.logger().Error("direction aborted",
			"source", sourceRoot, "dest", destRoot, "error", err)
	}

	return res
}

// copyItem transfers one missing item to its destination path. Copy failures
// are recorded on res and do not stop the walk; a parent-directory creation
// failure aborts the direction.
func (s *Synchronizer) copyItem(ctx context.Context, path, dest string, d fs.DirEntry, log *actionlog.Log, res *DirectionResult) error {
	if s.DryRun {
		log.Append(actionlog.Copied(path, dest))
		res.Copied++
		if d.IsDir() {
			// The real run copies the whole subtree as one unit; the plan
			// still totals the files and bytes that copy would transfer.
			files, bytes := s.planTreeTotals(path, res.Source)
			res.FilesCopied += files
			res.BytesCopied += bytes
			return fs.SkipDir
		}
		res.FilesCopied++
		if info, err := d.Info(); err == nil {
			res.BytesCopied += info.Size()
		}
		return nil
	}

	if err := fsops.EnsureParent(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrDestinationCreate, err)
	}

	if d.IsDir() {
		// Exclude globs are anchored at the direction's source root, so
		// the subtree walk rebases its relative paths before matching.
		relDir, relErr := filepath.Rel(res.Source, path)
		if relErr != nil {
			s.itemError(res, path, "copy", relErr)
			return nil
		}
		skip := func(rel string) bool {
			return s.excluded(filepath.ToSlash(filepath.Join(relDir, rel)))
		}
		files, bytes, err := fsops.CopyTree(ctx, path, dest, skip)
		res.FilesCopied += files
		res.BytesCopied += bytes
		if err != nil {
			s.itemError(res, path, "copy", err)
			return nil
		}
		log.Append(actionlog.Copied(path, dest))
		res.Copied++
		// Descendants are visited anyway and found already present.
		return nil
	}

	n, err := fsops.CopyFile(path, dest)
	if err != nil {
		s.itemError(res, path, "copy", err)
		return nil
	}
	log.Append(actionlog.Copied(path, dest))
	res.Copied++
	res.FilesCopied++
	res.BytesCopied += n
	return nil
}

// planTreeTotals sizes the subtree a dry run reports as one planned
// directory copy, honoring excludes. Sizing is best-effort: entries that
// cannot be read are left out, since a real run would surface them as item
// failures rather than transfer them.
func (s *Synchronizer) planTreeTotals(dir, sourceRoot string) (int, int64) {
	var files int
	var bytes int64

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		rel, err := filepath.Rel(sourceRoot, path)
		if err != nil {
			return nil
		}
		if path != dir && s.excluded(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			files++
			bytes += info.Size()
		}
		return nil
	})

	return files, bytes
}

func (s *Synchronizer) itemError(res *DirectionResult, path, op string, err error) {
	res.Errors = append(res.Errors, ItemError{Path: path, Op: op, Err: err})
	s.logger().Error("item failed, continuing",
		"op", op, "path", path, "error", err)
}
