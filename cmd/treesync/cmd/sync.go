package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/bianoble/treesync/internal/config"
	"github.com/bianoble/treesync/pkg/treesync"
)

var (
	syncExcludes []string
	syncManifest string
	syncDryRun   bool
)

var syncCmd = &cobra.Command{
	Use:   "sync [<rootA> <rootB>]",
	Short: "Reconcile two directory trees bidirectionally",
	Long: `Runs one bidirectional pass: items under root A missing under root B are
copied into B, then the reverse. Both roots converge to the union of their
contents. Items present on both sides are skipped without comparison.

Roots are given either as two absolute paths, or via --manifest, a YAML file
declaring one or more pairs. Each invocation starts from a clean action log;
nothing persists between runs.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), args, syncDryRun)
	},
}

func runSync(ctx context.Context, args []string, dryRun bool) error {
	pairs, excludes, err := resolvePairs(args)
	if err != nil {
		return err
	}

	if dryRun {
		detail("dry run — no files will be written")
	}

	failed := false
	for _, p := range pairs {
		ex := make([]string, 0, len(excludes)+len(p.Excludes))
		ex = append(ex, excludes...)
		ex = append(ex, p.Excludes...)

		opts := treesync.Options{
			Excludes: ex,
			DryRun:   dryRun,
			Logger:   slog.Default(),
		}

		result, actions, err := treesync.Reconcile(ctx, p.Left, p.Right, opts)
		if err != nil {
			return err
		}

		printReport(actions)
		printSummary(result)
		if result.Failed() {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("sync finished with errors")
	}
	return nil
}

// resolvePairs turns the command line into the list of root pairs to run.
// Two positional roots and --manifest are mutually exclusive.
func resolvePairs(args []string) ([]config.Pair, []string, error) {
	for _, g := range syncExcludes {
		if !doublestar.ValidatePattern(g) {
			return nil, nil, fmt.Errorf("invalid exclude pattern '%s'", g)
		}
	}

	if syncManifest != "" {
		if len(args) != 0 {
			return nil, nil, fmt.Errorf("either give two roots or --manifest, not both")
		}
		m, err := config.Load(syncManifest)
		if err != nil {
			return nil, nil, err
		}
		return m.Pairs, append(m.Excludes, syncExcludes...), nil
	}

	if len(args) != 2 {
		return nil, nil, fmt.Errorf("two absolute root paths are required (or use --manifest)")
	}
	return []config.Pair{{Left: args[0], Right: args[1]}}, syncExcludes, nil
}

func init() {
	syncCmd.Flags().StringSliceVar(&syncExcludes, "exclude", nil, "glob of paths to leave out (repeatable)")
	syncCmd.Flags().StringVar(&syncManifest, "manifest", "", "YAML manifest declaring root pairs")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "report actions without performing them")

	rootCmd.AddCommand(syncCmd)
}
