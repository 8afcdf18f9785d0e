package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage fetch history",
		Long: "View the local record of bandwidth fetch cycles and prune old entries.\n\n" +
			"Every cycle is recorded as settled, failed or stale (superseded by a\n" +
			"newer request). History is stored locally in ~/.config/bwdash/bwdash.db.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
