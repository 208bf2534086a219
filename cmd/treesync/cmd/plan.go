package cmd

import (
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [<rootA> <rootB>]",
	Short: "Show what a sync would do without touching either tree",
	Long: `Runs the same traversal as 'sync' but performs no filesystem mutation.
The report lists every directory that would be created and every item that
would be copied. Equivalent to 'sync --dry-run'.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context(), args, true)
	},
}

func init() {
	planCmd.Flags().StringSliceVar(&syncExcludes, "exclude", nil, "glob of paths to leave out (repeatable)")
	planCmd.Flags().StringVar(&syncManifest, "manifest", "", "YAML manifest declaring root pairs")

	rootCmd.AddCommand(planCmd)
}
